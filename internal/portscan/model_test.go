package portscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanRequestPorts(t *testing.T) {
	assert.Equal(t, 99, ScanRequest{StartPort: 1, EndPort: 100}.Ports())
	assert.Equal(t, 100, ScanRequest{StartPort: 1, EndPort: 100, InclusiveEnd: true}.Ports())
	assert.Equal(t, 0, ScanRequest{StartPort: 5, EndPort: 5}.Ports())
	assert.Equal(t, 1, ScanRequest{StartPort: 5, EndPort: 5, InclusiveEnd: true}.Ports())
}

func TestScanRequestValidate(t *testing.T) {
	assert.NoError(t, ScanRequest{StartPort: 1, EndPort: 65535}.Validate())
	assert.NoError(t, ScanRequest{StartPort: 5, EndPort: 5}.Validate())

	err := ScanRequest{StartPort: 10, EndPort: 9}.Validate()
	assert.EqualError(t, err, "start port 10 must not be greater than end port")
	err = ScanRequest{StartPort: 1, EndPort: 70000}.Validate()
	assert.EqualError(t, err, "end port 70000 must be between 1 and 65535")
}

func TestPortStatusString(t *testing.T) {
	assert.Equal(t, "Open", StatusOpen.String())
	assert.Equal(t, "Unknown", PortStatus(7).String())
}

func TestServiceName(t *testing.T) {
	assert.Equal(t, "ssh", ServiceName(22))
	assert.Equal(t, "http", ServiceName(80))
	assert.Equal(t, "", ServiceName(0))
	assert.Equal(t, "", ServiceName(70000))
}
