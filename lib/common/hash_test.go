// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	remarkHashString = "0x8821e8db19b8e34b62ee8bc618a5ed3eecb9761d7d81349b00aa5ce5dfca2534"
	emptyHashString  = "0x0000000000000000000000000000000000000000000000000000000000000000"
)

func TestHash_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		data       string
		expected   string
		errWrapped error
	}{
		"valid hash": {
			data:     `"` + remarkHashString + `"`,
			expected: remarkHashString,
		},
		"no prefix": {
			data:       `"zz"`,
			errWrapped: ErrNoPrefix,
		},
		"short hash": {
			data:       `"0x00"`,
			errWrapped: ErrInvalidHashLength,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var h Hash
			err := h.UnmarshalJSON([]byte(testCase.data))
			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, h.String())
		})
	}
}

func TestHash_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := Hash{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"`+emptyHashString+`"`, string(b))
}

func TestHash_Short(t *testing.T) {
	t.Parallel()

	h := MustHexToHash(remarkHashString)
	assert.Equal(t, "0x8821e8db...dfca2534", h.Short())
	assert.False(t, h.IsEmpty())
	assert.True(t, EmptyHash.IsEmpty())
}
