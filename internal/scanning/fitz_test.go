package scanning

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const onePagePDF = `%PDF-1.4
1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj
2 0 obj << /Type /Pages /Kids [3 0 R] /Count 1 >> endobj
3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >> endobj
4 0 obj << /Length 44 >> stream
BT /F1 12 Tf 72 712 Td (Total: 121,00) Tj ET
endstream endobj
5 0 obj << /Type /Font /Subtype /Type1 /BaseFont /Helvetica >> endobj
trailer << /Root 1 0 R >>
%%EOF
`

const blankPagePDF = `%PDF-1.4
1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj
2 0 obj << /Type /Pages /Kids [3 0 R] /Count 1 >> endobj
3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >> endobj
trailer << /Root 1 0 R >>
%%EOF
`

var _ = Describe("Fitz", func() {
	var (
		tmpDir    string
		extractor *Fitz
		path      string
		text      string
		err       error
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		extractor = NewFitz()
	})

	JustBeforeEach(func() {
		text, err = extractor.ExtractText(path)
	})

	When("the PDF has a text layer", func() {
		BeforeEach(func() {
			path = filepath.Join(tmpDir, "factura.pdf")
			Expect(os.WriteFile(path, []byte(onePagePDF), 0644)).To(Succeed())
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return the page text", func() {
			Expect(text).To(ContainSubstring("Total: 121,00"))
		})
	})

	When("the PDF has no text", func() {
		BeforeEach(func() {
			path = filepath.Join(tmpDir, "escaneada.pdf")
			Expect(os.WriteFile(path, []byte(blankPagePDF), 0644)).To(Succeed())
		})

		It("returns ErrNoText", func() {
			Expect(err).To(MatchError(ErrNoText))
			Expect(text).To(BeEmpty())
		})
	})

	When("the file is not a PDF", func() {
		BeforeEach(func() {
			path = filepath.Join(tmpDir, "notas.txt")
			Expect(os.WriteFile(path, []byte("Total: 5"), 0644)).To(Succeed())
		})

		It("returns ErrUnsupported", func() {
			Expect(err).To(MatchError(ErrUnsupported))
		})
	})

	When("the file does not exist", func() {
		BeforeEach(func() {
			path = filepath.Join(tmpDir, "missing.pdf")
		})

		It("returns a not-exist error", func() {
			Expect(err).To(MatchError(os.ErrNotExist))
		})
	})
})
