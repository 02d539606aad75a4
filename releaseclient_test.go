package driverfetch_test

import (
	"errors"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/frodenas/driverfetch"
)

const metadataDocument = `{
  "timestamp": "2023-12-12T10:08:47.207Z",
  "builds": {
    "120.0.6099": {
      "version": "120.0.6099.109",
      "revision": "1217362",
      "downloads": {
        "chromedriver": [
          {"platform": "linux64", "url": "https://example.com/linux64/chromedriver-linux64.zip"},
          {"platform": "win64", "url": "https://example.com/win64/chromedriver-win64.zip"}
        ]
      }
    }
  }
}`

var _ = Describe("ReleaseClient", func() {
	var (
		err     error
		tmpPath string
		server  *ghttp.Server
		source  driverfetch.Source
		client  driverfetch.ReleaseClient
	)

	BeforeEach(func() {
		tmpPath, err = ioutil.TempDir("", "release_client")
		Expect(err).ToNot(HaveOccurred())

		server = ghttp.NewServer()

		source = driverfetch.DefaultSource()
		source.MetadataURL = server.URL() + "/builds.json"
		source.StorageEndpoint = server.URL()
	})

	JustBeforeEach(func() {
		client, err = driverfetch.NewReleaseClient(ioutil.Discard, source)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()

		err := os.RemoveAll(tmpPath)
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Metadata", func() {
		It("decodes the builds document", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/builds.json"),
				ghttp.RespondWith(http.StatusOK, metadataDocument),
			))

			metadata, err := client.Metadata(source.MetadataURL)
			Expect(err).ToNot(HaveOccurred())

			Expect(metadata.Builds).To(HaveKey("120.0.6099"))
			build := metadata.Builds["120.0.6099"]
			Expect(build.Version).To(Equal("120.0.6099.109"))
			Expect(build.Downloads["chromedriver"]).To(HaveLen(2))
			Expect(build.Downloads["chromedriver"][1]).To(Equal(driverfetch.Download{
				Platform: "win64",
				URL:      "https://example.com/win64/chromedriver-win64.zip",
			}))
		})

		It("returns a network failure carrying the status code on a non-200 response", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound, "nope"))

			_, err := client.Metadata(source.MetadataURL)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, driverfetch.ErrNetwork)).To(BeTrue())

			var statusErr *driverfetch.HTTPStatusError
			Expect(errors.As(err, &statusErr)).To(BeTrue())
			Expect(statusErr.StatusCode).To(Equal(http.StatusNotFound))
			Expect(err.Error()).To(ContainSubstring("HTTP 404"))
		})

		It("returns a network failure when the document is not JSON", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "<html></html>"))

			_, err := client.Metadata(source.MetadataURL)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, driverfetch.ErrNetwork)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("decoding metadata"))
		})

		It("returns a network failure when the server is unreachable", func() {
			server.Close()

			_, err := client.Metadata(source.MetadataURL)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, driverfetch.ErrNetwork)).To(BeTrue())
		})
	})

	Describe("DownloadFile", func() {
		var localPath string

		BeforeEach(func() {
			localPath = filepath.Join(tmpPath, "chromedriver.zip")
		})

		It("writes the response body to the local path", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/win64/chromedriver-win64.zip"),
				ghttp.RespondWith(http.StatusOK, "archive-contents"),
			))

			err := client.DownloadFile(server.URL()+"/win64/chromedriver-win64.zip", localPath)
			Expect(err).ToNot(HaveOccurred())

			contents, err := ioutil.ReadFile(localPath)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(contents)).To(Equal("archive-contents"))
		})

		It("overwrites an existing file", func() {
			err := ioutil.WriteFile(localPath, []byte("stale archive with more bytes"), 0644)
			Expect(err).ToNot(HaveOccurred())

			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "fresh"))

			err = client.DownloadFile(server.URL()+"/chromedriver.zip", localPath)
			Expect(err).ToNot(HaveOccurred())

			contents, err := ioutil.ReadFile(localPath)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(contents)).To(Equal("fresh"))
		})

		It("leaves nothing behind on a non-200 response", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusForbidden, "denied"))

			err := client.DownloadFile(server.URL()+"/chromedriver.zip", localPath)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, driverfetch.ErrNetwork)).To(BeTrue())

			var statusErr *driverfetch.HTTPStatusError
			Expect(errors.As(err, &statusErr)).To(BeTrue())
			Expect(statusErr.StatusCode).To(Equal(http.StatusForbidden))

			entries, err := ioutil.ReadDir(tmpPath)
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})

		It("returns an io failure when the local path cannot be written", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "archive-contents"))

			err := client.DownloadFile(server.URL()+"/chromedriver.zip", filepath.Join(tmpPath, "missing", "chromedriver.zip"))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, driverfetch.ErrIO)).To(BeTrue())
		})

		Context("with a gs:// URL", func() {
			It("downloads the object through the storage API", func() {
				server.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/storage/v1/b/driver-mirror/o/chromedriver.zip"),
						ghttp.RespondWith(http.StatusOK, `{"name": "chromedriver.zip", "bucket": "driver-mirror", "size": "15"}`),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/storage/v1/b/driver-mirror/o/chromedriver.zip"),
						ghttp.RespondWith(http.StatusOK, "object-contents"),
					),
				)

				err := client.DownloadFile("gs://driver-mirror/chromedriver.zip", localPath)
				Expect(err).ToNot(HaveOccurred())

				contents, err := ioutil.ReadFile(localPath)
				Expect(err).ToNot(HaveOccurred())
				Expect(string(contents)).To(Equal("object-contents"))
			})

			It("rejects a URL without an object", func() {
				err := client.DownloadFile("gs://driver-mirror", localPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("invalid object URL"))
			})
		})
	})
})
