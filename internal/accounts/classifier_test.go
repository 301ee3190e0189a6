package accounts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zdziszkee/account-codes/internal/accounts"
	"github.com/zdziszkee/account-codes/internal/models"
)

// stubValidator answers every predicate with a fixed value and records calls
type stubValidator struct {
	virtual, newFormat, mine bool
	seen                     []string
}

func (s *stubValidator) IsVirtualAccount(account string) bool {
	s.seen = append(s.seen, account)
	return s.virtual
}

func (s *stubValidator) IsNewAccount(account string) bool {
	s.seen = append(s.seen, account)
	return s.newFormat
}

func (s *stubValidator) IsMyAccount(account string) bool {
	s.seen = append(s.seen, account)
	return s.mine
}

var _ = Describe("Classifier", func() {
	var classifier *accounts.Classifier

	BeforeEach(func() {
		classifier = accounts.NewClassifier(nil)
	})

	Describe("ClassifyType", func() {
		DescribeTable("maps account numbers to type codes",
			func(account string, expected models.AccountTypeCode) {
				Expect(classifier.ClassifyType(account)).To(Equal(expected))
			},
			Entry("9-digit demand variant", "005123456", models.TypeDemandVariant),
			Entry("10-digit aliased demand variant", "5061234567", models.TypeDemandVariant),
			Entry("11-digit savings", "12301012345", models.TypeSavings),
			Entry("11-digit loan is always central", "12333012345", models.TypeLoanCentral),
			Entry("12-digit fund/trust", "123021123456", models.TypeFundTrust),
			Entry("13-digit demand", "3011234567891", models.TypeDemand),
			Entry("13-digit regional loan", "5301234567893", models.TypeLoanRegional),
			Entry("13-digit branch-coop loan", "0301234567896", models.TypeLoanRegional),
			Entry("13-digit central loan", "0301234567892", models.TypeLoanCentral),
			Entry("13-digit passbook", "0401234567896", models.TypePassbook),
			Entry("14-digit virtual", "79312345678901", models.TypeVirtual),
			Entry("14-digit new format", "35012345678901", models.TypeForeignCurrency),
			Entry("14-digit generic fund", "12345601712345", models.TypeFundTrust),
			Entry("14-digit generic loan is regional", "12345603012345", models.TypeLoanRegional),
			Entry("15-digit virtual subject", "123579123456789", models.TypeVirtual),
			Entry("16-digit is always savings", "1234567890123456", models.TypeSavings),
			Entry("16-digit of zeros is savings", "0000000000000000", models.TypeSavings),
			Entry("unknown subject", "999123456", models.TypeUnclassified),
			Entry("too short", "12345678", models.TypeUnclassified),
			Entry("too long", "12345678901234567", models.TypeUnclassified),
			Entry("empty", "", models.TypeUnclassified),
			Entry("letters", "abcdefghijk", models.TypeUnclassified),
		)

		It("strips hyphens and whitespace before classifying", func() {
			Expect(classifier.ClassifyType(" 301-1234-5678-91 ")).To(Equal(models.TypeDemand))
			Expect(classifier.ClassifyType("301 1234 5678 91")).To(Equal(models.TypeDemand))
		})

		It("reads full-width digits", func() {
			Expect(classifier.ClassifyType("３０１－１２３４－５６７８－９１")).To(Equal(models.TypeDemand))
		})

		It("short-circuits own accounts to type 0", func() {
			classifier = accounts.NewClassifier(accounts.NewRuleValidator("301-1234-5678-91"))
			Expect(classifier.ClassifyType("3011234567891")).To(Equal(models.TypeOwn))
			Expect(classifier.ClassifyType("1234567890123456")).To(Equal(models.TypeSavings))
		})

		It("passes normalized digits to the validator", func() {
			stub := &stubValidator{}
			classifier = accounts.NewClassifier(stub)
			classifier.ClassifyType("123456-01-712345")
			Expect(stub.seen).NotTo(BeEmpty())
			for _, account := range stub.seen {
				Expect(account).To(Equal("12345601712345"))
			}
		})

		It("honours a validator that reports a 14-digit account as virtual", func() {
			classifier = accounts.NewClassifier(&stubValidator{virtual: true})
			Expect(classifier.ClassifyType("12345601712345")).To(Equal(models.TypeVirtual))
		})

		It("reads the subject from the front of new-format accounts", func() {
			classifier = accounts.NewClassifier(&stubValidator{newFormat: true})
			Expect(classifier.ClassifyType("01012345678901")).To(Equal(models.TypeSavings))
		})

		It("never panics on arbitrary input", func() {
			for _, input := range []string{"-", "   ", "１", "0", "12-34", "💳💳💳💳💳💳💳💳💳", "1234567890\x00123"} {
				Expect(func() { classifier.ClassifyType(input) }).NotTo(Panic())
				Expect(func() { classifier.SubjectCode(input) }).NotTo(Panic())
			}
		})
	})

	Describe("SubjectCode", func() {
		It("returns the canonical subject", func() {
			Expect(classifier.SubjectCode("3011234567891")).To(Equal(models.SubjectCode("001")))
			Expect(classifier.SubjectCode("79312345678901")).To(Equal(models.SubjectCode("079")))
		})

		It("returns 000 for own accounts", func() {
			classifier = accounts.NewClassifier(&stubValidator{mine: true})
			Expect(classifier.SubjectCode("3011234567891")).To(Equal(models.SubjectOwn))
		})

		It("returns 999 when nothing matches", func() {
			Expect(classifier.SubjectCode("")).To(Equal(models.SubjectUnclassified))
			Expect(classifier.SubjectCode("1234567890123456")).To(Equal(models.SubjectUnclassified))
			Expect(classifier.SubjectCode("12345678")).To(Equal(models.SubjectUnclassified))
		})
	})

	Describe("CanonicalSubject", func() {
		DescribeTable("collapses every alias group onto one code",
			func(canonical string) {
				aliases := []string{canonical, "3" + canonical[1:], "5" + canonical[1:]}
				for _, alias := range aliases {
					Expect(accounts.CanonicalSubject(alias)).To(Equal(models.SubjectCode(canonical)), alias)
				}
			},
			Entry("001", "001"), Entry("002", "002"), Entry("005", "005"), Entry("006", "006"),
			Entry("010", "010"), Entry("012", "012"), Entry("017", "017"), Entry("021", "021"),
			Entry("030", "030"), Entry("040", "040"), Entry("050", "050"), Entry("079", "079"),
		)

		It("maps unknown codes to 999", func() {
			Expect(accounts.CanonicalSubject("123")).To(Equal(models.SubjectUnclassified))
			Expect(accounts.CanonicalSubject("")).To(Equal(models.SubjectUnclassified))
		})
	})

	Describe("Classify", func() {
		It("bundles every derivation", func() {
			result := classifier.Classify("530-1234-5678-93")
			Expect(result).To(Equal(models.Classification{
				Account:     "5301234567893",
				Type:        models.TypeLoanRegional,
				Subject:     "030",
				Affiliation: models.AffiliationRegional,
			}))
		})

		It("reports non-digit input as central", func() {
			Expect(classifier.Classify("abcdefghijkl6").Affiliation).To(Equal(models.AffiliationCentral))
		})
	})
})
