// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"fmt"

	"github.com/ChainSafe/opengov-cli/lib/common"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// Client is a JSON-RPC client of a Substrate node, over HTTP or websocket.
type Client struct {
	rpc *gethrpc.Client
}

// Dial connects to the node at endpoint.
func Dial(ctx context.Context, endpoint string) (*Client, error) {
	c, err := gethrpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{rpc: c}, nil
}

// StateCall executes a runtime API function with SCALE encoded data at the
// best block and returns the SCALE encoded result.
func (c *Client) StateCall(ctx context.Context, method string, data []byte) ([]byte, error) {
	var result string
	err := c.rpc.CallContext(ctx, &result, "state_call", method, common.BytesToHex(data))
	if err != nil {
		return nil, err
	}

	decoded, err := common.HexToBytes(result)
	if err != nil {
		return nil, fmt.Errorf("decoding state_call result: %w", err)
	}
	return decoded, nil
}

// Metadata returns the hex encoded runtime metadata of the best block.
func (c *Client) Metadata(ctx context.Context) (string, error) {
	var result string
	err := c.rpc.CallContext(ctx, &result, "state_getMetadata")
	if err != nil {
		return "", err
	}
	return result, nil
}

// Close closes the underlying connection.
func (c *Client) Close() {
	c.rpc.Close()
}
