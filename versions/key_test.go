package versions_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/frodenas/driverfetch/versions"
)

var _ = Describe("Key", func() {
	DescribeTable("Compare",
		func(a string, b string, expected int) {
			Expect(versions.MustParseKey(a).Compare(versions.MustParseKey(b))).To(Equal(expected))
			Expect(versions.MustParseKey(b).Compare(versions.MustParseKey(a))).To(Equal(-expected))
		},
		Entry("numeric, not lexicographic", "10.0", "9.0", 1),
		Entry("later components decide", "120.0.6099", "120.0.6045", 1),
		Entry("equal keys", "120.0.6099", "120.0.6099", 0),
		Entry("multi-digit components", "1.5.100", "1.5.9", 1),
		Entry("missing trailing components count as zero", "120.0", "120.0.0", 0),
		Entry("ragged keys with a non-zero tail", "120.0.6099.1", "120.0.6099", 1),
		Entry("shorter key with a greater prefix", "121", "120.0.6099.109", 1),
	)

	DescribeTable("ParseKey rejects non-numeric keys",
		func(raw string) {
			_, err := versions.ParseKey(raw)
			Expect(err).To(HaveOccurred())
		},
		Entry("empty", ""),
		Entry("letters", "120.0.beta"),
		Entry("negative component", "120.-1"),
		Entry("empty component", "120..1"),
	)

	It("truncates to the leading components", func() {
		Expect(versions.MustParseKey("120.0.6099.109").Truncate(2).String()).To(Equal("120.0"))
		Expect(versions.MustParseKey("120.0").Truncate(3).String()).To(Equal("120.0"))
	})

	It("keeps the raw string", func() {
		Expect(versions.MustParseKey("120.0.6099").String()).To(Equal("120.0.6099"))
	})
})
