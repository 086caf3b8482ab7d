package department_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	departmentDatamodel "github.com/sakshigoud44/back2campus/internal/core/datamodel/department"
	"github.com/sakshigoud44/back2campus/internal/department"
	departmentPostgres "github.com/sakshigoud44/back2campus/internal/department/postgres"
	"github.com/sakshigoud44/back2campus/internal/transport"
)

type departmentEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

type departmentPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

var _ = Describe("DepartmentHandler", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&departmentDatamodel.Department{})).To(Succeed())

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		repo := departmentPostgres.NewRepository(db)
		service := department.NewService(repo, logger)
		handler := department.NewHandler(transport.NewBaseHandler(logger), service)

		router = chi.NewRouter()
		router.Get("/api/departments", handler.GetDepartments)
		router.Post("/api/departments", handler.CreateDepartment)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/departments", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder) departmentEnvelope {
		var env departmentEnvelope
		Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
		return env
	}

	Describe("POST /api/departments", func() {
		It("should create a department and echo it back", func() {
			rec := post(`{"name":"Civil Engineering","code":"CE","description":"Structures and surveying"}`)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			env := decode(rec)
			Expect(env.Success).To(BeTrue())
			Expect(env.Message).To(Equal("Department created successfully"))

			var created departmentPayload
			Expect(json.Unmarshal(env.Data, &created)).To(Succeed())
			Expect(created.ID).NotTo(BeZero())
			Expect(created.Code).To(Equal("CE"))
		})

		It("should reject a duplicate name with 400", func() {
			Expect(post(`{"name":"Physics","code":"PHY"}`).Code).To(Equal(http.StatusCreated))

			rec := post(`{"name":"Physics","code":"PH2"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(rec).Message).To(Equal("Department name or code already exists"))
		})

		It("should reject a duplicate code with the same message", func() {
			Expect(post(`{"name":"Physics","code":"PHY"}`).Code).To(Equal(http.StatusCreated))

			rec := post(`{"name":"Applied Physics","code":"PHY"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(rec).Message).To(Equal("Department name or code already exists"))
		})

		It("should require name and code", func() {
			rec := post(`{"description":"orphan"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(rec).Errors).To(ConsistOf(
				"Name is required",
				"Code is required",
			))
		})
	})

	Describe("GET /api/departments", func() {
		It("should list departments sorted by name regardless of insert order", func() {
			Expect(post(`{"name":"Mechanical","code":"ME"}`).Code).To(Equal(http.StatusCreated))
			Expect(post(`{"name":"Civil","code":"CE"}`).Code).To(Equal(http.StatusCreated))
			Expect(post(`{"name":"Electrical","code":"EE"}`).Code).To(Equal(http.StatusCreated))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/departments", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			env := decode(rec)
			var departments []departmentPayload
			Expect(json.Unmarshal(env.Data, &departments)).To(Succeed())
			Expect(departments).To(HaveLen(3))
			Expect(departments[0].Name).To(Equal("Civil"))
			Expect(departments[1].Name).To(Equal("Electrical"))
			Expect(departments[2].Name).To(Equal("Mechanical"))
		})

		It("should return an empty list when nothing exists", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/departments", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decode(rec).Success).To(BeTrue())
		})
	})
})
