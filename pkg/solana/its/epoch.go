package its

import (
	"time"

	"github.com/pkg/errors"
)

// FlowEpochDuration is the window flow limits are accounted over.
const FlowEpochDuration = 6 * time.Hour

var now = time.Now

// FlowEpochWithTimestamp buckets a unix timestamp, in seconds, into its flow epoch.
func FlowEpochWithTimestamp(unixTs int64) (uint64, error) {
	if unixTs < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "timestamp: negative %d", unixTs)
	}
	return uint64(unixTs) / uint64(FlowEpochDuration/time.Second), nil
}

func CurrentFlowEpoch() (uint64, error) {
	return FlowEpochWithTimestamp(now().Unix())
}

func flowEpoch(timestamp *int64) (uint64, error) {
	if timestamp == nil {
		return CurrentFlowEpoch()
	}
	return FlowEpochWithTimestamp(*timestamp)
}
