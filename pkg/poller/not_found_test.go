package poller

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/giantswarm/micrologger/microloggertest"

	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

func Test_NotFound_Await(t *testing.T) {
	ref := idref.IDReference{ResourceGroup: "rg1", Name: "disk1", ID: diskID}

	testCases := []struct {
		name           string
		results        []bool
		errs           []error
		maxRetries     uint64
		expectedResult bool
		expectedCalls  int
	}{
		{
			name:           "case 0: gone on first check",
			results:        []bool{false},
			errs:           []error{nil},
			expectedResult: true,
			expectedCalls:  1,
		},
		{
			name:           "case 1: gone on third check",
			results:        []bool{true, true, false},
			errs:           []error{nil, nil, nil},
			expectedResult: true,
			expectedCalls:  3,
		},
		{
			name:           "case 2: errors are retried",
			results:        []bool{false, false},
			errs:           []error{errors.New("throttled"), nil},
			expectedResult: true,
			expectedCalls:  2,
		},
		{
			name:           "case 3: still there after all retries",
			results:        []bool{true, true, true},
			errs:           []error{nil, nil, nil},
			maxRetries:     2,
			expectedResult: false,
			expectedCalls:  3,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			maxRetries := tc.maxRetries
			if maxRetries == 0 {
				maxRetries = 10
			}

			p, err := NewNotFound(NotFoundConfig{
				Logger:          microloggertest.New(),
				InitialInterval: time.Millisecond,
				MaxInterval:     2 * time.Millisecond,
				MaxWait:         time.Second,
				MaxRetries:      maxRetries,
			})
			if err != nil {
				t.Fatal(err)
			}

			var calls int
			exists := func(ctx context.Context, r idref.IDReference) (bool, error) {
				if r != ref {
					t.Fatalf("got reference %#v, want %#v", r, ref)
				}
				i := calls
				calls++
				if i >= len(tc.results) {
					i = len(tc.results) - 1
				}
				return tc.results[i], tc.errs[i]
			}

			result := p.Await(context.Background(), ref, exists)
			if result != tc.expectedResult {
				t.Fatalf("Await() == %t, want %t", result, tc.expectedResult)
			}
			if calls != tc.expectedCalls {
				t.Fatalf("exists called %d times, want %d", calls, tc.expectedCalls)
			}
		})
	}
}
