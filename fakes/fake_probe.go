package fakes

import (
	"sync"

	"github.com/frodenas/driverfetch/probe"
)

type FakeProbe struct {
	ProbeStub        func() (string, bool, error)
	probeMutex       sync.RWMutex
	probeArgsForCall []struct{}
	probeReturns     struct {
		result1 string
		result2 bool
		result3 error
	}
}

func (fake *FakeProbe) Probe() (string, bool, error) {
	fake.probeMutex.Lock()
	fake.probeArgsForCall = append(fake.probeArgsForCall, struct{}{})
	fake.probeMutex.Unlock()
	if fake.ProbeStub != nil {
		return fake.ProbeStub()
	}
	return fake.probeReturns.result1, fake.probeReturns.result2, fake.probeReturns.result3
}

func (fake *FakeProbe) ProbeCallCount() int {
	fake.probeMutex.RLock()
	defer fake.probeMutex.RUnlock()
	return len(fake.probeArgsForCall)
}

func (fake *FakeProbe) ProbeReturns(result1 string, result2 bool, result3 error) {
	fake.ProbeStub = nil
	fake.probeReturns = struct {
		result1 string
		result2 bool
		result3 error
	}{result1, result2, result3}
}

var _ probe.Probe = new(FakeProbe)
