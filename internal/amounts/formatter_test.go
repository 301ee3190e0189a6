package amounts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/zdziszkee/account-codes/internal/amounts"
	"github.com/zdziszkee/account-codes/internal/models"
)

var _ = Describe("Formatter", func() {
	var formatter *amounts.Formatter

	BeforeEach(func() {
		formatter = amounts.NewFormatter()
	})

	Describe("GroupThousands", func() {
		DescribeTable("groups integer digits by three",
			func(input, expected string) {
				grouped, err := formatter.GroupThousands(input)
				Expect(err).NotTo(HaveOccurred())
				Expect(grouped).To(Equal(expected))
			},
			Entry("short", "123", "123"),
			Entry("four digits", "1234", "1,234"),
			Entry("negative", "-1234567", "-1,234,567"),
			Entry("explicit plus", "+1000", "1,000"),
			Entry("leading zeros", "000123", "123"),
			Entry("zero", "0", "0"),
			Entry("zeros", "000", "0"),
			Entry("negative zero", "-0", "0"),
			Entry("fraction", "1234567.891", "1,234,567.891"),
			Entry("negative fraction below one", "-0.5", "-0.5"),
			Entry("already grouped", "1,234,567", "1,234,567"),
			Entry("surrounding whitespace", " 98765 ", "98,765"),
			Entry("empty", "", ""),
			Entry("unknown amount marker", "888888888888", "?"),
			Entry("grouped unknown amount marker", "888,888,888,888", "?"),
		)

		DescribeTable("rejects malformed amounts",
			func(input string) {
				_, err := formatter.GroupThousands(input)
				Expect(err).To(MatchError(amounts.ErrInvalidAmountFormat))
			},
			Entry("letters", "12a"),
			Entry("two points", "1.2.3"),
			Entry("trailing point", "12."),
			Entry("sign only", "-"),
			Entry("inner space", "12 34"),
		)

		Context("in strict mode", func() {
			BeforeEach(func() {
				formatter.Strict = true
			})

			It("reports a leading zero", func() {
				_, err := formatter.GroupThousands("0123")
				Expect(err).To(MatchError(amounts.ErrInvalidAmountFormat))
				Expect(err.Error()).To(ContainSubstring("leading zero"))
			})

			It("accepts a single zero and fractions below one", func() {
				Expect(formatter.GroupThousands("0")).To(Equal("0"))
				Expect(formatter.GroupThousands("0.25")).To(Equal("0.25"))
			})
		})

		It("uses a custom separator", func() {
			formatter.Separator = "'"
			Expect(formatter.GroupThousands("1234567")).To(Equal("1'234'567"))
		})

		It("only strips separators between integer digits", func() {
			formatter.Separator = "'"
			Expect(formatter.GroupThousands("1'234'567.5")).To(Equal("1'234'567.5"))

			_, err := formatter.GroupThousands("'1234")
			Expect(err).To(MatchError(amounts.ErrInvalidAmountFormat))

			formatter.Separator = ","
			_, err = formatter.GroupThousands("1234.5,6")
			Expect(err).To(MatchError(amounts.ErrInvalidAmountFormat))

			_, err = formatter.GroupThousands("1234,")
			Expect(err).To(MatchError(amounts.ErrInvalidAmountFormat))
		})

		DescribeTable("refuses separators that collide with amount syntax",
			func(separator string) {
				formatter.Separator = separator
				_, err := formatter.GroupThousands("1234.56")
				Expect(err).To(MatchError(amounts.ErrInvalidSeparator))

				_, err = formatter.ToKoreanWords("12.5", models.UnitDollar)
				Expect(err).To(MatchError(amounts.ErrInvalidSeparator))
			},
			Entry("decimal point", "."),
			Entry("digit", "0"),
			Entry("minus", "-"),
			Entry("plus", "+"),
			Entry("space", " "),
			Entry("digit inside a longer separator", "a1"),
		)

		It("falls back to commas on the zero value", func() {
			var zero amounts.Formatter
			Expect(zero.GroupThousands("1234")).To(Equal("1,234"))
		})
	})

	Describe("ValidateSeparator", func() {
		DescribeTable("accepts separators",
			func(separator string) {
				Expect(amounts.ValidateSeparator(separator)).To(Succeed())
			},
			Entry("comma", ","),
			Entry("apostrophe", "'"),
			Entry("underscore", "_"),
		)

		It("rejects an empty separator", func() {
			Expect(amounts.ValidateSeparator("")).To(MatchError(amounts.ErrInvalidSeparator))
		})
	})

	Describe("GroupDecimal", func() {
		It("rounds to the requested places before grouping", func() {
			grouped, err := formatter.GroupDecimal(decimal.RequireFromString("1234567.5"), 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(grouped).To(Equal("1,234,567.50"))

			grouped, err = formatter.GroupDecimal(decimal.RequireFromString("-98765.4321"), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(grouped).To(Equal("-98,765"))
		})
	})
})
