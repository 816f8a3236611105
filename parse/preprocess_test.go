package parse

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func asParseError(err error) *Error {
	var perr *Error
	ExpectWithOffset(1, errors.As(err, &perr)).To(BeTrue())
	return perr
}

var _ = Describe("Preprocess", func() {
	It("should strip comments and blank lines", func() {
		src := strings.Join([]string{
			".IPPcode24",
			"",
			"# a full-line comment",
			"DEFVAR GF@x # a trailing comment",
			"   ",
			"WRITE GF@x",
		}, "\n")

		lines, err := Preprocess(strings.NewReader(src))

		Expect(err).ToNot(HaveOccurred())
		Expect(lines).To(HaveLen(2))
		Expect(lines[0]).To(Equal(Line{Num: 4, Text: "DEFVAR GF@x"}))
		Expect(lines[1]).To(Equal(Line{Num: 6, Text: "WRITE GF@x"}))
	})

	It("should accept a header preceded by comments and blank lines", func() {
		src := "# prelude\n\n   .IPPcode24   \nBREAK\n"

		lines, err := Preprocess(strings.NewReader(src))

		Expect(err).ToNot(HaveOccurred())
		Expect(lines).To(HaveLen(1))
		Expect(lines[0].Text).To(Equal("BREAK"))
	})

	It("should accept a comment on the header line", func() {
		src := ".IPPcode24 # checked after stripping\n"

		lines, err := Preprocess(strings.NewReader(src))

		Expect(err).ToNot(HaveOccurred())
		Expect(lines).To(BeEmpty())
	})

	It("should reject a header with the wrong case", func() {
		_, err := Preprocess(strings.NewReader(".ippCODE24\nBREAK\n"))

		perr := asParseError(err)
		Expect(perr.Kind).To(Equal(ErrHeader))
		Expect(perr.Line).To(Equal(1))
	})

	It("should reject a header sharing its line with an instruction", func() {
		_, err := Preprocess(strings.NewReader(".IPPcode24 BREAK\n"))

		perr := asParseError(err)
		Expect(perr.Kind).To(Equal(ErrHeader))
	})

	It("should reject an instruction arriving before the header", func() {
		_, err := Preprocess(strings.NewReader("BREAK\n.IPPcode24\n"))

		perr := asParseError(err)
		Expect(perr.Kind).To(Equal(ErrHeader))
		Expect(perr.Text).To(Equal("BREAK"))
	})

	It("should reject input with no header at all", func() {
		_, err := Preprocess(strings.NewReader("# only comments\n\n"))

		perr := asParseError(err)
		Expect(perr.Kind).To(Equal(ErrHeader))
		Expect(perr.Line).To(Equal(0))
	})

	It("should treat a header with an empty body as a valid program", func() {
		lines, err := Preprocess(strings.NewReader(".IPPcode24\n# nothing else\n"))

		Expect(err).ToNot(HaveOccurred())
		Expect(lines).To(BeEmpty())
	})

	It("should drop a UTF-8 byte order mark in front of the header", func() {
		src := "\xEF\xBB\xBF.IPPcode24\nBREAK\n"

		lines, err := Preprocess(strings.NewReader(src))

		Expect(err).ToNot(HaveOccurred())
		Expect(lines).To(HaveLen(1))
	})
})
