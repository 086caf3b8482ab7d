package pagination_test

import (
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sakshigoud44/back2campus/internal/core/common/pagination"
)

var _ = Describe("Pagination", func() {
	Describe("FromRequest", func() {
		It("should default to page 1 with 10 per page", func() {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/api/announcements", nil))
			Expect(params.Page).To(Equal(1))
			Expect(params.Limit).To(Equal(10))
		})

		It("should accept explicit values", func() {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/api/announcements?page=3&limit=25", nil))
			Expect(params.Page).To(Equal(3))
			Expect(params.Limit).To(Equal(25))
		})

		It("should ignore zero, negative and non-numeric values", func() {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/api/announcements?page=-1&limit=abc", nil))
			Expect(params.Page).To(Equal(1))
			Expect(params.Limit).To(Equal(10))
		})

		It("should fall back to the default for a limit above the maximum", func() {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/api/announcements?limit=5000", nil))
			Expect(params.Limit).To(Equal(10))
		})
	})

	Describe("Offset", func() {
		It("should derive the row offset from page and limit", func() {
			Expect(pagination.Params{Page: 1, Limit: 10}.Offset()).To(Equal(0))
			Expect(pagination.Params{Page: 3, Limit: 10}.Offset()).To(Equal(20))
			Expect(pagination.Params{Page: 2, Limit: 7}.Offset()).To(Equal(7))
		})
	})

	Describe("MetaFor", func() {
		It("should round total pages up for a partial final page", func() {
			meta := pagination.Params{Page: 2, Limit: 10}.MetaFor(15)
			Expect(meta.CurrentPage).To(Equal(2))
			Expect(meta.TotalPages).To(Equal(2))
			Expect(meta.TotalRecords).To(Equal(int64(15)))
			Expect(meta.PerPage).To(Equal(10))
		})

		It("should report zero pages for an empty collection", func() {
			meta := pagination.Params{Page: 1, Limit: 10}.MetaFor(0)
			Expect(meta.TotalPages).To(Equal(0))
			Expect(meta.TotalRecords).To(Equal(int64(0)))
		})

		It("should not add a page when the total divides evenly", func() {
			meta := pagination.Params{Page: 1, Limit: 10}.MetaFor(30)
			Expect(meta.TotalPages).To(Equal(3))
		})
	})
})
