package accounts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zdziszkee/account-codes/internal/accounts"
	"github.com/zdziszkee/account-codes/internal/models"
)

var _ = Describe("ClassifyAffiliation", func() {
	DescribeTable("resolves the issuing affiliation",
		func(account string, expected models.Affiliation) {
			Expect(accounts.ClassifyAffiliation(account)).To(Equal(expected))
		},
		Entry("11 digits", "12345678901", models.AffiliationCentral),
		Entry("12 digits", "123456789012", models.AffiliationCentral),
		Entry("15 digits", "123456789012345", models.AffiliationCentral),
		Entry("13 digits ending in 1", "3011234567891", models.AffiliationCentral),
		Entry("13 digits ending in 2", "3011234567892", models.AffiliationCentral),
		Entry("13 digits ending in 3", "3011234567893", models.AffiliationRegional),
		Entry("13 digits ending in 4", "3011234567894", models.AffiliationRegional),
		Entry("13 digits ending in 5", "3011234567895", models.AffiliationRegional),
		Entry("13 digits ending in 6", "3011234567896", models.AffiliationBranchCoop),
		Entry("13 digits ending in 7", "3011234567897", models.AffiliationBranchCoop),
		Entry("13 digits ending in 8", "3011234567898", models.AffiliationVirtual),
		Entry("13 digits ending in 9", "3011234567899", models.AffiliationVirtual),
		Entry("13 digits ending in 0", "3011234567890", models.AffiliationCentral),
		Entry("14 digits with 793 prefix", "79312345678901", models.AffiliationVirtual),
		Entry("14 digits with 790 prefix", "79012345678901", models.AffiliationRegional),
		Entry("14 digits otherwise", "35012345678901", models.AffiliationRegional),
		Entry("9 digits", "123456789", models.AffiliationCentral),
		Entry("16 digits", "1234567890123456", models.AffiliationCentral),
		Entry("empty", "", models.AffiliationCentral),
		Entry("13 letters ending in 6", "abcdefghijkl6", models.AffiliationCentral),
		Entry("14 characters with 793 prefix and letters", "793abcdefghijk", models.AffiliationCentral),
		Entry("13 characters with a letter inside", "30112345x7896", models.AffiliationCentral),
	)

	It("ignores separators", func() {
		Expect(accounts.ClassifyAffiliation("301-1234-5678-96")).To(Equal(models.AffiliationBranchCoop))
		Expect(accounts.ClassifyAffiliation("793123-45-678901")).To(Equal(models.AffiliationVirtual))
	})

	It("reads full-width digits as digits", func() {
		Expect(accounts.ClassifyAffiliation("３０１１２３４５６７８９６")).To(Equal(models.AffiliationBranchCoop))
	})
})
