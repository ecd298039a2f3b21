// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package weight

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChainSafe/opengov-cli/internal/log"
	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "weight"))

var (
	ErrQueryTimeout   = errors.New("weight query timed out")
	ErrQueryRejected  = errors.New("weight query rejected by node")
	ErrQueryDecode    = errors.New("cannot decode weight query response")
	ErrQueryTransport = errors.New("weight query transport failure")
)

const (
	// DefaultTimeout bounds a single weight query.
	DefaultTimeout = 10 * time.Second

	queryCallInfo = "TransactionPaymentCallApi_query_call_info"
)

// Outcome labels of a weight query.
const (
	OutcomeOK        = "ok"
	OutcomeTimeout   = "timeout"
	OutcomeRejected  = "rejected"
	OutcomeDecode    = "decode"
	OutcomeTransport = "transport"
)

// StateCaller executes runtime API calls against a node.
type StateCaller interface {
	StateCall(ctx context.Context, method string, data []byte) ([]byte, error)
	Close()
}

// Dialer connects to a node endpoint.
type Dialer interface {
	Dial(ctx context.Context, endpoint string) (StateCaller, error)
}

// DialerFunc adapts a function to the Dialer interface.
type DialerFunc func(ctx context.Context, endpoint string) (StateCaller, error)

// Dial calls f.
func (f DialerFunc) Dial(ctx context.Context, endpoint string) (StateCaller, error) {
	return f(ctx, endpoint)
}

// Observer records weight query outcomes.
type Observer interface {
	ObserveWeightQuery(chain, outcome string)
}

// dispatchInfo mirrors RuntimeDispatchInfo returned by query_call_info.
type dispatchInfo struct {
	Weight     Weight
	Class      uint8
	PartialFee types.U128
}

// Estimator asks the destination chain how much weight a call needs.
type Estimator struct {
	dialer   Dialer
	timeout  time.Duration
	observer Observer
}

// NewEstimator returns an estimator. A zero timeout selects DefaultTimeout
// and observer may be nil.
func NewEstimator(dialer Dialer, timeout time.Duration, observer Observer) *Estimator {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Estimator{
		dialer:   dialer,
		timeout:  timeout,
		observer: observer,
	}
}

// TransactWeightNeeded returns the weight needed to execute c on its chain,
// or fallback if the chain cannot be queried. Failures are logged and never
// returned.
func (e *Estimator) TransactWeightNeeded(ctx context.Context, c *call.CallInfo, fallback Weight) Weight {
	chainID := string(c.Chain().ID)

	w, err := e.Query(ctx, c)
	if err != nil {
		logger.Warnf("using fallback weight %s for call on %s: %s", fallback, chainID, err)
		e.observe(chainID, outcome(err))
		return fallback
	}

	logger.Debugf("weight needed on %s: %s", chainID, w)
	e.observe(chainID, OutcomeOK)
	return w
}

// Query runs TransactionPaymentCallApi_query_call_info for c. Errors wrap
// one of ErrQueryTimeout, ErrQueryRejected, ErrQueryDecode or ErrQueryTransport.
func (e *Estimator) Query(ctx context.Context, c *call.CallInfo) (Weight, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	endpoint := c.Chain().RPC
	client, err := e.dialer.Dial(ctx, endpoint)
	if err != nil {
		return Weight{}, classify(ctx, fmt.Errorf("dialing %s: %w", endpoint, err))
	}
	defer client.Close()

	params, err := queryParams(c)
	if err != nil {
		return Weight{}, err
	}

	response, err := client.StateCall(ctx, queryCallInfo, params)
	if err != nil {
		return Weight{}, classify(ctx, fmt.Errorf("calling %s: %w", queryCallInfo, err))
	}

	var info dispatchInfo
	err = codec.Decode(response, &info)
	if err != nil {
		return Weight{}, fmt.Errorf("%w: %s", ErrQueryDecode, err)
	}
	return info.Weight, nil
}

// queryParams encodes the call followed by its length as a u32.
func queryParams(c *call.CallInfo) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	encoder := scale.NewEncoder(buffer)
	err := encoder.Write(c.Encoded())
	if err != nil {
		return nil, err
	}
	err = encoder.Encode(c.Length())
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrQueryTimeout, err)
	}
	var rpcErr gethrpc.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%w: %s", ErrQueryRejected, err)
	}
	return fmt.Errorf("%w: %s", ErrQueryTransport, err)
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrQueryTimeout):
		return OutcomeTimeout
	case errors.Is(err, ErrQueryRejected):
		return OutcomeRejected
	case errors.Is(err, ErrQueryDecode):
		return OutcomeDecode
	default:
		return OutcomeTransport
	}
}

func (e *Estimator) observe(chain, outcome string) {
	if e.observer != nil {
		e.observer.ObserveWeightQuery(chain, outcome)
	}
}
