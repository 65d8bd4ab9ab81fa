package tabular

import (
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SumColumn", func() {
	var (
		table   *Table
		column  int
		summary *ColumnSummary
		err     error
	)

	BeforeEach(func() {
		table = &Table{
			Header: []string{"source_name", "total"},
			Rows: [][]string{
				{"a.pdf", "10"},
				{"b.pdf", "abc"},
				{"c.pdf", ""},
				{"d.pdf", "5.5"},
			},
		}
		column = 1
	})

	JustBeforeEach(func() {
		summary, err = SumColumn(table, column)
	})

	When("the column mixes numbers, text and blanks", func() {
		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("sums only the numeric cells", func() {
			Expect(summary.Sum.Equal(decimal.RequireFromString("15.5"))).To(BeTrue())
		})

		It("counts valid and invalid rows", func() {
			Expect(summary.TotalRows).To(Equal(4))
			Expect(summary.ValidRows).To(Equal(2))
			Expect(summary.InvalidRows).To(Equal(2))
			Expect(summary.ValidRows + summary.InvalidRows).To(Equal(summary.TotalRows))
		})

		It("names the column", func() {
			Expect(summary.ColumnIndex).To(Equal(1))
			Expect(summary.ColumnName).To(Equal("total"))
		})

		It("keeps samples of the ignored cells", func() {
			Expect(summary.Invalid).To(Equal([]Cell{{Row: 1, Value: "abc"}, {Row: 2, Value: ""}}))
		})
	})

	When("no cell is numeric", func() {
		BeforeEach(func() {
			column = 0
		})

		It("sums to zero", func() {
			Expect(summary.Sum.IsZero()).To(BeTrue())
			Expect(summary.InvalidRows).To(Equal(4))
		})
	})

	When("the sum needs exact decimals", func() {
		BeforeEach(func() {
			table.Rows = [][]string{{"x", "0.1"}, {"y", "0.2"}, {"z", " 1e2 "}}
		})

		It("does not accumulate float error", func() {
			Expect(summary.Sum.Equal(decimal.RequireFromString("100.3"))).To(BeTrue())
		})
	})

	DescribeTable("out-of-range columns",
		func(c int) {
			summary, err := SumColumn(table, c)
			Expect(err).To(MatchError(ErrInvalidColumn))
			Expect(summary).To(BeNil())
		},
		Entry("negative", -1),
		Entry("equal to the column count", 2),
		Entry("far past the end", 99),
	)
})

var _ = Describe("ParseNumber", func() {
	DescribeTable("cells",
		func(cell string, ok bool) {
			_, parsed := ParseNumber(cell)
			Expect(parsed).To(Equal(ok))
		},
		Entry("integer", "10", true),
		Entry("decimal", "5.5", true),
		Entry("negative", "-3", true),
		Entry("blank", "  ", false),
		Entry("text", "N/D", false),
		Entry("symbol", "€", false),
		Entry("decimal comma", "1,5", false),
	)
})
