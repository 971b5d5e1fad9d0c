package senddecorator

import (
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-node-cleanup/pkg/backpressure"
	"github.com/giantswarm/azure-node-cleanup/pkg/httputil"
)

// throttlePause applies when ARM throttles a call without a usable
// Retry-After header.
const throttlePause = 6 * time.Minute

func init() {
	// A throttled subscription must not be hit again by the autorest retry
	// loop. The circuit breaker below owns 429 handling.
	autorest.StatusCodesForRetry = removeElementFromSlice(autorest.StatusCodesForRetry, http.StatusTooManyRequests)
}

// RateLimitCircuitBreaker stops all clients sharing b from calling Azure while
// the subscription is throttled. A 429 response opens the breaker until the
// time named by its Retry-After header.
func RateLimitCircuitBreaker(b *backpressure.Backpressure) autorest.SendDecorator {
	breaker := circuitBreaker{backpressure: b}

	return func(next autorest.Sender) autorest.Sender {
		return autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
			err := breaker.admit()
			if err != nil {
				return nil, microerror.Mask(err)
			}

			resp, err := next.Do(r)
			if breaker.trips(resp) {
				return nil, microerror.Maskf(tooManyRequestsError, "%s %s throttled until %s", r.Method, r.URL.Path, b.RetryAfter())
			}

			return resp, err
		})
	}
}

type circuitBreaker struct {
	backpressure *backpressure.Backpressure
}

// admit fails while the breaker is open.
func (c circuitBreaker) admit() error {
	if c.backpressure.CanProceed() {
		return nil
	}

	return microerror.Maskf(tooManyRequestsError, "subscription throttled until %s", c.backpressure.RetryAfter())
}

// trips opens the breaker when resp reports throttling.
func (c circuitBreaker) trips(resp *http.Response) bool {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return false
	}

	c.backpressure.NotBefore(httputil.RetryAfterOrDefault(resp, throttlePause))

	return true
}

func removeElementFromSlice(xs []int, x int) []int {
	if len(xs) == 0 {
		return xs
	}

	out := make([]int, 0, len(xs))
	for _, v := range xs {
		if v != x {
			out = append(out, v)
		}
	}

	return out
}
