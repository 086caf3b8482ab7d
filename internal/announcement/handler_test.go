package announcement_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/sakshigoud44/back2campus/internal/announcement"
	announcementPostgres "github.com/sakshigoud44/back2campus/internal/announcement/postgres"
	"github.com/sakshigoud44/back2campus/internal/auth"
	alumniDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/alumni"
	announcementDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/announcement"
	departmentDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/department"
	"github.com/sakshigoud44/back2campus/internal/transport"
)

type listEnvelope struct {
	Success bool `json:"success"`
	Data    []struct {
		ID     int64  `json:"id"`
		Title  string `json:"title"`
		Author *struct {
			ID         int64  `json:"id"`
			Name       string `json:"name"`
			Batch      string `json:"batch"`
			Department *struct {
				Name string `json:"name"`
				Code string `json:"code"`
			} `json:"department"`
		} `json:"author"`
	} `json:"data"`
	Pagination *struct {
		CurrentPage  int   `json:"current_page"`
		TotalPages   int   `json:"total_pages"`
		TotalRecords int64 `json:"total_records"`
		PerPage      int   `json:"per_page"`
	} `json:"pagination"`
}

type itemEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID     int64  `json:"id"`
		Title  string `json:"title"`
		Author *struct {
			ID int64 `json:"id"`
		} `json:"author"`
	} `json:"data"`
	Errors []string `json:"errors"`
}

var _ = Describe("AnnouncementHandler", func() {
	var (
		db       *gorm.DB
		router   *chi.Mux
		authorID int64
	)

	seedAnnouncement := func(title string, createdAt time.Time) {
		record := announcementDatamodel.Announcement{
			Title:       title,
			Description: "details for " + title,
			AuthorID:    authorID,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		}
		Expect(db.Create(&record).Error).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(
			&departmentDatamodel.Department{},
			&alumniDatamodel.Alumni{},
			&announcementDatamodel.Announcement{},
		)).To(Succeed())

		dept := departmentDatamodel.Department{Name: "Computer Science", Code: "CS"}
		Expect(db.Create(&dept).Error).To(Succeed())

		author := alumniDatamodel.Alumni{
			Name:         "Meera Nair",
			Batch:        "2017",
			DepartmentID: dept.ID,
			Email:        "meera@example.com",
			PasswordHash: "irrelevant",
		}
		Expect(db.Create(&author).Error).To(Succeed())
		authorID = author.ID

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		repo := announcementPostgres.NewRepository(db)
		service := announcement.NewService(repo, logger)
		handler := announcement.NewHandler(transport.NewBaseHandler(logger), service)

		// the auth gate is exercised in its own suite; protected routes here
		// get the account injected straight into the context
		withCaller := func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := auth.ContextWithAlumni(r.Context(), &auth.Alumni{ID: authorID})
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		}

		router = chi.NewRouter()
		router.Route("/api/announcements", func(sr chi.Router) {
			sr.Get("/", handler.GetAnnouncements)
			sr.Get("/{id}", handler.GetAnnouncement)
			sr.Group(func(pr chi.Router) {
				pr.Use(withCaller)
				pr.Post("/", handler.CreateAnnouncement)
			})
		})
	})

	Describe("GET /api/announcements", func() {
		BeforeEach(func() {
			base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
			for i := 1; i <= 15; i++ {
				seedAnnouncement(fmt.Sprintf("Reunion update %02d", i), base.Add(time.Duration(i)*time.Hour))
			}
		})

		It("should default to the first page of ten, newest first", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/announcements", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var env listEnvelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Data).To(HaveLen(10))
			Expect(env.Data[0].Title).To(Equal("Reunion update 15"))
			Expect(env.Pagination.CurrentPage).To(Equal(1))
			Expect(env.Pagination.PerPage).To(Equal(10))
		})

		It("should return the remainder on the last page with ceiling-divided totals", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/announcements?page=2&limit=10", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var env listEnvelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Data).To(HaveLen(5))
			Expect(env.Data[0].Title).To(Equal("Reunion update 05"))
			Expect(env.Pagination.CurrentPage).To(Equal(2))
			Expect(env.Pagination.TotalPages).To(Equal(2))
			Expect(env.Pagination.TotalRecords).To(Equal(int64(15)))
		})

		It("should fall back to defaults on unusable query values", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/announcements?page=zero&limit=-3", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var env listEnvelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Pagination.CurrentPage).To(Equal(1))
			Expect(env.Pagination.PerPage).To(Equal(10))
		})

		It("should populate the author with name, batch and department", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/announcements?limit=1", nil))

			var env listEnvelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Data).To(HaveLen(1))
			Expect(env.Data[0].Author).NotTo(BeNil())
			Expect(env.Data[0].Author.Name).To(Equal("Meera Nair"))
			Expect(env.Data[0].Author.Department.Code).To(Equal("CS"))
		})
	})

	Describe("GET /api/announcements/{id}", func() {
		It("should return a single announcement", func() {
			seedAnnouncement("Homecoming weekend", time.Now())

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/announcements/1", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var env itemEnvelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Data.Title).To(Equal("Homecoming weekend"))
		})

		It("should answer 404 for an id that does not exist", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/announcements/999", nil))
			Expect(rec.Code).To(Equal(http.StatusNotFound))

			var env itemEnvelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Message).To(Equal("Announcement not found"))
		})

		It("should answer 400 for a non-numeric id", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/announcements/abc", nil))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var env itemEnvelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Message).To(Equal("Invalid announcement ID"))
		})
	})

	Describe("POST /api/announcements", func() {
		It("should create the announcement with the caller as author", func() {
			body := bytes.NewReader([]byte(`{"title":"Mentorship drive","description":"Sign up by Friday","author":999}`))
			req := httptest.NewRequest(http.MethodPost, "/api/announcements", body)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var env itemEnvelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Message).To(Equal("Announcement created successfully"))
			Expect(env.Data.Author).NotTo(BeNil())
			Expect(env.Data.Author.ID).To(Equal(authorID))

			var stored announcementDatamodel.Announcement
			Expect(db.First(&stored, env.Data.ID).Error).To(Succeed())
			Expect(stored.AuthorID).To(Equal(authorID))
		})

		It("should reject a title above the length limit", func() {
			payload := map[string]string{
				"title":       string(bytes.Repeat([]byte("t"), 201)),
				"description": "fine",
			}
			raw, err := json.Marshal(payload)
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodPost, "/api/announcements", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var env itemEnvelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Errors).To(ContainElement("Title cannot exceed 200 characters"))
		})

		It("should require both title and description", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/announcements", bytes.NewReader([]byte(`{}`)))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var env itemEnvelope
			Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
			Expect(env.Errors).To(ConsistOf(
				"Title is required",
				"Description is required",
			))
		})
	})
})
