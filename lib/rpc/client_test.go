// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ChainSafe/opengov-cli/lib/common"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stateService serves the state_ namespace.
type stateService struct {
	mutex sync.Mutex
	calls []string
}

func (s *stateService) Call(method, data string) (string, error) {
	s.mutex.Lock()
	s.calls = append(s.calls, method+" "+data)
	s.mutex.Unlock()
	if method != "TransactionPaymentCallApi_query_call_info" {
		return "", errors.New("Execution failed: unknown runtime API")
	}
	return "0x02286bee02093d00", nil
}

func (s *stateService) GetMetadata() (string, error) {
	return "0x6d657461", nil
}

func newTestServer(t *testing.T) (endpoint string, service *stateService) {
	t.Helper()

	service = &stateService{}
	server := gethrpc.NewServer()
	err := server.RegisterName("state", service)
	require.NoError(t, err)

	httpServer := httptest.NewServer(server)
	t.Cleanup(func() {
		httpServer.Close()
		server.Stop()
	})
	return httpServer.URL, service
}

func Test_Client_StateCall(t *testing.T) {
	t.Parallel()

	endpoint, service := newTestServer(t)
	client, err := Dial(context.Background(), endpoint)
	require.NoError(t, err)
	defer client.Close()

	result, err := client.StateCall(context.Background(),
		"TransactionPaymentCallApi_query_call_info", []byte{0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, common.MustHexToBytes("0x02286bee02093d00"), result)
	service.mutex.Lock()
	assert.Equal(t, []string{"TransactionPaymentCallApi_query_call_info 0x0000"}, service.calls)
	service.mutex.Unlock()

	_, err = client.StateCall(context.Background(), "Core_version", nil)
	var rpcErr gethrpc.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.EqualError(t, err, "Execution failed: unknown runtime API")
}

func Test_Client_Metadata(t *testing.T) {
	t.Parallel()

	endpoint, _ := newTestServer(t)
	client, err := Dial(context.Background(), endpoint)
	require.NoError(t, err)
	defer client.Close()

	metadata, err := client.Metadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0x6d657461", metadata)
}

func Test_Dial_badEndpoint(t *testing.T) {
	t.Parallel()

	_, err := Dial(context.Background(), "ftp://localhost")
	assert.Error(t, err)
}
