package driverfetch

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/nu7hatch/gouuid"
	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	"golang.org/x/xerrors"
	"google.golang.org/api/storage/v1"
	"gopkg.in/cheggaaa/pb.v1"
)

const userAgent = "driverfetch/0.0.1"

type ReleaseClient interface {
	Metadata(metadataURL string) (Metadata, error)
	DownloadFile(sourceURL string, localPath string) error
}

type releaseclient struct {
	httpClient     *http.Client
	storageService *storage.Service
	progressOutput io.Writer
}

func NewReleaseClient(
	progressOutput io.Writer,
	source Source,
) (ReleaseClient, error) {
	timeout, err := source.TimeoutValue()
	if err != nil {
		return &releaseclient{}, err
	}

	httpClient := &http.Client{Timeout: timeout}

	storageClient := httpClient
	if source.JSONKey != "" {
		storageJwtConf, err := oauthgoogle.JWTConfigFromJSON([]byte(source.JSONKey), storage.DevstorageReadOnlyScope)
		if err != nil {
			return &releaseclient{}, err
		}
		storageClient = storageJwtConf.Client(oauth2.NoContext)
		storageClient.Timeout = timeout
	}

	storageService, err := storage.New(storageClient)
	if err != nil {
		return &releaseclient{}, err
	}
	storageService.UserAgent = userAgent
	if source.StorageEndpoint != "" {
		storageService.BasePath = strings.TrimSuffix(source.StorageEndpoint, "/") + "/storage/v1/"
	}

	return &releaseclient{
		httpClient:     httpClient,
		storageService: storageService,
		progressOutput: progressOutput,
	}, nil
}

func (client *releaseclient) Metadata(metadataURL string) (Metadata, error) {
	body, _, err := client.get(metadataURL)
	if err != nil {
		return Metadata{}, NewError(NetworkFailure, "fetching metadata", err)
	}
	defer body.Close()

	var metadata Metadata
	if err := json.NewDecoder(body).Decode(&metadata); err != nil {
		return Metadata{}, NewError(NetworkFailure, "decoding metadata", err)
	}

	return metadata, nil
}

// DownloadFile streams sourceURL into localPath. The content lands in a
// part-file next to localPath first, so localPath is only replaced once the
// whole body has been written.
func (client *releaseclient) DownloadFile(sourceURL string, localPath string) error {
	body, size, err := client.open(sourceURL)
	if err != nil {
		return NewError(NetworkFailure, "downloading "+sourceURL, err)
	}
	defer body.Close()

	guid, err := uuid.NewV4()
	if err != nil {
		return NewError(IOFailure, "naming part-file", err)
	}
	partPath := filepath.Join(filepath.Dir(localPath), filepath.Base(localPath)+".part-"+guid.String())

	localFile, err := os.Create(partPath)
	if err != nil {
		return NewError(IOFailure, "creating "+partPath, err)
	}
	defer os.Remove(partPath)

	progress := client.newProgressBar(size)
	progress.Start()

	reader := progress.NewProxyReader(body)
	_, err = io.Copy(localFile, reader)
	progress.Finish()
	if err != nil {
		localFile.Close()
		return NewError(NetworkFailure, "downloading "+sourceURL, err)
	}

	if err := localFile.Close(); err != nil {
		return NewError(IOFailure, "writing "+partPath, err)
	}

	if err := os.Rename(partPath, localPath); err != nil {
		return NewError(IOFailure, "moving download to "+localPath, err)
	}

	return nil
}

func (client *releaseclient) open(sourceURL string) (io.ReadCloser, int64, error) {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return nil, 0, err
	}

	if u.Scheme == "gs" {
		return client.openObject(u.Host, strings.TrimPrefix(u.Path, "/"))
	}

	return client.get(sourceURL)
}

func (client *releaseclient) get(sourceURL string) (io.ReadCloser, int64, error) {
	request, err := http.NewRequest(http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, 0, err
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, 0, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close()
		return nil, 0, &HTTPStatusError{
			URL:        sourceURL,
			StatusCode: response.StatusCode,
			Status:     http.StatusText(response.StatusCode),
		}
	}

	return response.Body, response.ContentLength, nil
}

func (client *releaseclient) openObject(bucketName string, objectPath string) (io.ReadCloser, int64, error) {
	if bucketName == "" || objectPath == "" {
		return nil, 0, xerrors.Errorf("invalid object URL gs://%s/%s", bucketName, objectPath)
	}

	getCall := client.storageService.Objects.Get(bucketName, objectPath)

	object, err := getCall.Do()
	if err != nil {
		return nil, 0, err
	}

	response, err := getCall.Download()
	if err != nil {
		return nil, 0, err
	}

	return response.Body, int64(object.Size), nil
}

func (client *releaseclient) newProgressBar(total int64) *pb.ProgressBar {
	if total < 0 {
		total = 0
	}
	progress := pb.New64(total)

	progress.Output = client.progressOutput
	progress.ShowSpeed = true
	progress.Units = pb.U_BYTES
	progress.NotPrint = client.progressOutput == nil

	return progress.SetWidth(80)
}
