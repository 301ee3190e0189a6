package amounts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zdziszkee/account-codes/internal/amounts"
	"github.com/zdziszkee/account-codes/internal/models"
)

var _ = Describe("ToKoreanWords", func() {
	var formatter *amounts.Formatter

	BeforeEach(func() {
		formatter = amounts.NewFormatter()
	})

	DescribeTable("spells amounts in won",
		func(input, expected string) {
			words, err := formatter.ToKoreanWords(input, models.UnitWon)
			Expect(err).NotTo(HaveOccurred())
			Expect(words).To(Equal(expected))
		},
		Entry("single digit", "7", "칠 원"),
		Entry("tens", "12", "일십이 원"),
		Entry("thousands", "15000", "일만오천 원"),
		Entry("leading zeros", "00012", "일십이 원"),
		Entry("grouped input", "1,000", "일천 원"),
		Entry("ten thousand", "10000", "일만 원"),
		Entry("ten thousand and one", "10001", "일만일 원"),
		Entry("ten million", "10000000", "일천만 원"),
		Entry("hundred million", "100000000", "일억 원"),
		Entry("hundred million and one", "100000001", "일억일 원"),
		Entry("zero middle tier", "100010001", "일억일만일 원"),
		Entry("zero low tier", "1000010000", "일십억일만 원"),
		Entry("trillion", "1000000000000", "일조 원"),
		Entry("every position", "123456789", "일억이천삼백사십오만육천칠백팔십구 원"),
		Entry("largest", "9999999999999999", "구천구백구십구조구천구백구십구억구천구백구십구만구천구백구십구 원"),
		Entry("negative", "-3000", "마이너스 삼천 원"),
	)

	DescribeTable("keys the zero phrase and suffix by unit",
		func(input string, unit models.AmountUnit, expected string) {
			words, err := formatter.ToKoreanWords(input, unit)
			Expect(err).NotTo(HaveOccurred())
			Expect(words).To(Equal(expected))
		},
		Entry("zero won", "0", models.UnitWon, "영 원"),
		Entry("zero man", "0", models.UnitMan, "영만 원"),
		Entry("zero sipman", "000", models.UnitSipman, "영십만 원"),
		Entry("zero dollar", "0", models.UnitDollar, "영 달러"),
		Entry("negative zero", "-0", models.UnitWon, "영 원"),
		Entry("man", "5", models.UnitMan, "오만 원"),
		Entry("sipman", "3", models.UnitSipman, "삼십만 원"),
		Entry("dollar with cents", "12.5", models.UnitDollar, "일십이점오 달러"),
		Entry("dollar with trailing zero", "12.50", models.UnitDollar, "일십이점오 달러"),
		Entry("inner zero after point", "0.05", models.UnitDollar, "영점영오 달러"),
		Entry("empty unit defaults to won", "20", models.AmountUnit(""), "이십 원"),
	)

	It("keeps the decimal point when a custom separator is configured", func() {
		formatter.Separator = "'"
		Expect(formatter.ToKoreanWords("12'345.5", models.UnitDollar)).To(Equal("일만이천삼백사십오점오 달러"))
	})

	It("reports tier overflow with the range phrase", func() {
		words, err := formatter.ToKoreanWords("10000000000000000", models.UnitWon)
		Expect(err).To(MatchError(amounts.ErrRangeExceeded))
		Expect(words).To(Equal(amounts.RangeExceededPhrase))
	})

	It("does not count leading zeros towards the range", func() {
		words, err := formatter.ToKoreanWords("00000000000000000001", models.UnitWon)
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal("일 원"))
	})

	It("rejects malformed amounts", func() {
		_, err := formatter.ToKoreanWords("12,3a", models.UnitWon)
		Expect(err).To(MatchError(amounts.ErrInvalidAmountFormat))

		_, err = formatter.ToKoreanWords("", models.UnitWon)
		Expect(err).To(MatchError(amounts.ErrInvalidAmountFormat))
	})

	It("rejects unknown units", func() {
		_, err := formatter.ToKoreanWords("100", models.AmountUnit("yen"))
		Expect(err).To(MatchError(amounts.ErrInvalidUnit))
	})

	It("emits each tier marker at most once for every tier boundary combination", func() {
		for _, tier := range []string{"0000", "0001", "0010", "0100", "1000", "1001", "9999"} {
			words, err := formatter.ToKoreanWords("1"+tier+tier, models.UnitWon)
			Expect(err).NotTo(HaveOccurred())
			Expect(words).To(HavePrefix("일억"))
			if tier == "0000" {
				Expect(words).NotTo(ContainSubstring("만"))
			} else {
				Expect(words).To(ContainSubstring("만"))
			}
		}
	})
})

var _ = Describe("ParseUnit", func() {
	It("accepts known units case-insensitively", func() {
		Expect(amounts.ParseUnit("MAN")).To(Equal(models.UnitMan))
		Expect(amounts.ParseUnit(" dollar ")).To(Equal(models.UnitDollar))
		Expect(amounts.ParseUnit("")).To(Equal(models.UnitWon))
	})

	It("rejects unknown units", func() {
		_, err := amounts.ParseUnit("yen")
		Expect(err).To(MatchError(amounts.ErrInvalidUnit))
	})
})
