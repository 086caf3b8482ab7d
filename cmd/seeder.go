package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with departments and a sample alumni account for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"announcements", "alumni", "departments"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		departments := []struct {
			Name string
			Code string
			Desc string
		}{
			{"Computer Science", "CS", "Department of Computer Science"},
			{"Electronics", "ECE", "Department of Electronics and Communication"},
			{"Mechanical Engineering", "ME", "Department of Mechanical Engineering"},
		}

		var csID int64
		for _, d := range departments {
			var id int64
			row := db.Raw("SELECT id FROM departments WHERE code = ?", d.Code).Row()
			if err := row.Scan(&id); err == nil {
				fmt.Printf("department %s already exists\n", d.Code)
			} else {
				if err := db.Exec("INSERT INTO departments (name, code, description, created_at, updated_at) VALUES (?, ?, ?, now(), now())", d.Name, d.Code, d.Desc).Error; err != nil {
					log.Fatalf("failed to insert department %s: %v", d.Code, err)
				}
				row = db.Raw("SELECT id FROM departments WHERE code = ?", d.Code).Row()
				if err := row.Scan(&id); err != nil {
					log.Fatalf("failed to read back department %s: %v", d.Code, err)
				}
				fmt.Println("Seeded department:", d.Name)
			}
			if d.Code == "CS" {
				csID = id
			}
		}

		sampleEmail := "sakshi@back2campus.dev"
		var exists int
		row := db.Raw("SELECT 1 FROM alumni WHERE email = ?", sampleEmail).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("sample alumni already exists")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash sample password: %v", err)
		}
		if err := db.Exec("INSERT INTO alumni (name, batch, department_id, job_title, email, phone, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, now(), now())",
			"Sakshi Goud", "2020", csID, "Software Engineer", sampleEmail, "9999999999", string(hash)).Error; err != nil {
			log.Fatalf("failed to insert sample alumni: %v", err)
		}
		fmt.Println("Seeded sample alumni:", sampleEmail)
	},
}
