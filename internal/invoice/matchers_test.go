package invoice

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MatchSupplier", func() {
	var (
		text     string
		supplier string
	)

	JustBeforeEach(func() {
		supplier = MatchSupplier(text)
	})

	When("the text has a legal-entity suffix", func() {
		BeforeEach(func() {
			text = sampleInvoice
		})

		It("returns the name before the suffix", func() {
			Expect(supplier).To(Equal("Consultoría Ejemplo"))
		})
	})

	When("both an S.L.U. name and a CIF are present", func() {
		BeforeEach(func() {
			text = "CIF: B12345678\nServicios Norte SLU\nTotal: 10,00"
		})

		It("prefers the legal-entity name", func() {
			Expect(supplier).To(Equal("Servicios Norte"))
		})
	})

	When("the suffix follows a comma", func() {
		BeforeEach(func() {
			text = "Emitida por Talleres Ruiz, S.L.\n"
		})

		It("returns the name before the comma", func() {
			Expect(supplier).To(Equal("Talleres Ruiz"))
		})
	})

	When("only a tax id is present", func() {
		BeforeEach(func() {
			text = "proveedor sin forma social\nnif: B98765432\n"
		})

		It("returns the tax id", func() {
			Expect(supplier).To(Equal("B98765432"))
		})
	})

	When("the name is written in capitals", func() {
		BeforeEach(func() {
			text = "FERRETERIA GARCIA S.L.\nCIF: B12345678\n"
		})

		It("returns the name before the suffix", func() {
			Expect(supplier).To(Equal("FERRETERIA GARCIA"))
		})
	})

	When("the tax id is written in lowercase", func() {
		BeforeEach(func() {
			text = "cif: b12345678\n"
		})

		It("returns the tax id as written", func() {
			Expect(supplier).To(Equal("b12345678"))
		})
	})

	When("the name is longer than 80 characters", func() {
		BeforeEach(func() {
			text = strings.Repeat("Palabra ", 15) + "Final S.L."
		})

		It("truncates it", func() {
			Expect([]rune(supplier)).To(HaveLen(80))
			Expect(supplier).To(HavePrefix("Palabra Palabra"))
		})
	})

	When("nothing identifies the supplier", func() {
		BeforeEach(func() {
			text = "recibo sin datos"
		})

		It("returns the sentinel", func() {
			Expect(supplier).To(Equal(NotDetected))
		})
	})
})

var _ = Describe("MatchInvoiceNumber", func() {
	DescribeTable("labelled numbers",
		func(text, expected string) {
			Expect(MatchInvoiceNumber(text, "doc.pdf")).To(Equal(expected))
		},
		Entry("número de factura", sampleInvoice, "F-2024017"),
		Entry("Nº factura", "Nº factura: A-77\n", "A-77"),
		Entry("N.º de factura", "N.º de factura 2024/0042", "20240042"),
		Entry("No. de factura", "No. de factura: INV-9", "INV-9"),
		Entry("value on the next line", "Nº de factura\n  12345\n", "12345"),
		Entry("bare Número label", "Pedido\nNúmero: FR-88\n", "FR-88"),
	)

	It("falls back to the file name without its extension", func() {
		Expect(MatchInvoiceNumber("sin etiqueta", "foo.pdf")).To(Equal("foo"))
	})

	It("ignores a label whose value has no digits", func() {
		Expect(MatchInvoiceNumber("Nº de factura: pendiente", "bar.PDF")).To(Equal("bar"))
	})
})

var _ = Describe("MatchDate", func() {
	DescribeTable("dates",
		func(text, expected string) {
			Expect(MatchDate(text)).To(Equal(expected))
		},
		Entry("labelled factura date", sampleInvoice, "15/03/2024"),
		Entry("labelled emisión date, case-insensitive", "FECHA DE EMISIÓN: 01.02.2023", "01.02.2023"),
		Entry("labelled facturación date", "Fecha facturación - 2023-11-30", "2023-11-30"),
		Entry("bare date token", "Pedido del 5-1-24 recibido", "5-1-24"),
		Entry("labelled date wins over an earlier bare date", "Albarán 01/01/2020\nFecha de factura: 02/02/2022", "02/02/2022"),
		Entry("no date", "sin fecha", ""),
	)
})

var _ = Describe("MatchAmounts", func() {
	var (
		text    string
		window  int
		amounts Amounts
	)

	BeforeEach(func() {
		window = DefaultAmountWindow
	})

	JustBeforeEach(func() {
		amounts = MatchAmounts(text, window)
	})

	When("the summary has all three fields", func() {
		BeforeEach(func() {
			text = sampleInvoice
		})

		It("extracts the total", func() {
			Expect(amounts.Total).To(HaveValue(BeNumerically("~", 1210.0)))
		})

		It("extracts the subtotal", func() {
			Expect(amounts.Subtotal).To(HaveValue(BeNumerically("~", 1000.0)))
		})

		It("extracts the tax", func() {
			Expect(amounts.Tax).To(HaveValue(BeNumerically("~", 210.0)))
		})
	})

	When("a later rule matches a different value for a filled field", func() {
		BeforeEach(func() {
			text = "Subtotal en EUR (sin IVA) 300,00\nBase imponible: 100,00\n"
		})

		It("keeps the value from the earlier rule", func() {
			Expect(amounts.Subtotal).To(HaveValue(BeNumerically("~", 100.0)))
		})

		It("leaves unmatched fields nil", func() {
			Expect(amounts.Total).To(BeNil())
		})
	})

	When("no amount label is present", func() {
		BeforeEach(func() {
			text = "Gracias por su compra"
		})

		It("leaves every field nil rather than zero", func() {
			Expect(amounts.Total).To(BeNil())
			Expect(amounts.Subtotal).To(BeNil())
			Expect(amounts.Tax).To(BeNil())
		})
	})

	When("the total is exactly zero", func() {
		BeforeEach(func() {
			text = "Total: 0,00"
		})

		It("records a detected zero instead of a miss", func() {
			Expect(amounts.Total).To(HaveValue(BeZero()))
		})
	})

	When("a VAT rate sits between the tax label and its amount", func() {
		BeforeEach(func() {
			text = "IVA (21%): 210,00\nTotal: 1.210,00"
		})

		It("reads the rate as the tax", func() {
			Expect(amounts.Tax).To(HaveValue(BeNumerically("~", 21.0)))
		})

		It("still reads the total", func() {
			Expect(amounts.Total).To(HaveValue(BeNumerically("~", 1210.0)))
		})
	})

	When("subtotal is only mentioned inside another word", func() {
		BeforeEach(func() {
			text = "Subtotal: 50,00\nTotal a pagar: 60,50"
		})

		It("does not read the subtotal as the total", func() {
			Expect(amounts.Total).To(HaveValue(BeNumerically("~", 60.5)))
			Expect(amounts.Subtotal).To(HaveValue(BeNumerically("~", 50.0)))
		})
	})

	When("the totals sit outside the trailing window", func() {
		BeforeEach(func() {
			text = "Total: 50,00\n" + strings.Repeat("x", DefaultAmountWindow)
		})

		It("does not see them", func() {
			Expect(amounts.Total).To(BeNil())
		})

		When("the window is widened", func() {
			BeforeEach(func() {
				window = 2 * DefaultAmountWindow
			})

			It("finds them", func() {
				Expect(amounts.Total).To(HaveValue(BeNumerically("~", 50.0)))
			})
		})
	})
})
