package fakes

import (
	"sync"

	driverfetch "github.com/frodenas/driverfetch"
)

type FakeReleaseClient struct {
	MetadataStub        func(string) (driverfetch.Metadata, error)
	metadataMutex       sync.RWMutex
	metadataArgsForCall []struct {
		arg1 string
	}
	metadataReturns struct {
		result1 driverfetch.Metadata
		result2 error
	}
	DownloadFileStub        func(string, string) error
	downloadFileMutex       sync.RWMutex
	downloadFileArgsForCall []struct {
		arg1 string
		arg2 string
	}
	downloadFileReturns struct {
		result1 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeReleaseClient) Metadata(arg1 string) (driverfetch.Metadata, error) {
	fake.metadataMutex.Lock()
	fake.metadataArgsForCall = append(fake.metadataArgsForCall, struct {
		arg1 string
	}{arg1})
	fake.recordInvocation("Metadata", []interface{}{arg1})
	fake.metadataMutex.Unlock()
	if fake.MetadataStub != nil {
		return fake.MetadataStub(arg1)
	}
	return fake.metadataReturns.result1, fake.metadataReturns.result2
}

func (fake *FakeReleaseClient) MetadataCallCount() int {
	fake.metadataMutex.RLock()
	defer fake.metadataMutex.RUnlock()
	return len(fake.metadataArgsForCall)
}

func (fake *FakeReleaseClient) MetadataArgsForCall(i int) string {
	fake.metadataMutex.RLock()
	defer fake.metadataMutex.RUnlock()
	return fake.metadataArgsForCall[i].arg1
}

func (fake *FakeReleaseClient) MetadataReturns(result1 driverfetch.Metadata, result2 error) {
	fake.MetadataStub = nil
	fake.metadataReturns = struct {
		result1 driverfetch.Metadata
		result2 error
	}{result1, result2}
}

func (fake *FakeReleaseClient) DownloadFile(arg1 string, arg2 string) error {
	fake.downloadFileMutex.Lock()
	fake.downloadFileArgsForCall = append(fake.downloadFileArgsForCall, struct {
		arg1 string
		arg2 string
	}{arg1, arg2})
	fake.recordInvocation("DownloadFile", []interface{}{arg1, arg2})
	fake.downloadFileMutex.Unlock()
	if fake.DownloadFileStub != nil {
		return fake.DownloadFileStub(arg1, arg2)
	}
	return fake.downloadFileReturns.result1
}

func (fake *FakeReleaseClient) DownloadFileCallCount() int {
	fake.downloadFileMutex.RLock()
	defer fake.downloadFileMutex.RUnlock()
	return len(fake.downloadFileArgsForCall)
}

func (fake *FakeReleaseClient) DownloadFileArgsForCall(i int) (string, string) {
	fake.downloadFileMutex.RLock()
	defer fake.downloadFileMutex.RUnlock()
	return fake.downloadFileArgsForCall[i].arg1, fake.downloadFileArgsForCall[i].arg2
}

func (fake *FakeReleaseClient) DownloadFileReturns(result1 error) {
	fake.DownloadFileStub = nil
	fake.downloadFileReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeReleaseClient) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeReleaseClient) recordInvocation(key string, args []interface{}) {
	fake.invocationsMutex.Lock()
	defer fake.invocationsMutex.Unlock()
	if fake.invocations == nil {
		fake.invocations = map[string][][]interface{}{}
	}
	if fake.invocations[key] == nil {
		fake.invocations[key] = [][]interface{}{}
	}
	fake.invocations[key] = append(fake.invocations[key], args)
}

var _ driverfetch.ReleaseClient = new(FakeReleaseClient)
