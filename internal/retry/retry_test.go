package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"commit-assistant/internal/retry"

	"github.com/stretchr/testify/suite"
)

type RetrySuite struct {
	suite.Suite
}

func (s *RetrySuite) Test_Eventual_Success() {

	calls := 0

	err := retry.Do(
		context.Background(),
		3,
		1*time.Millisecond,
		func() error {
			calls++
			if calls < 2 {
				return errors.New("fail")
			}
			return nil
		},
	)

	s.NoError(err)
	s.Equal(2, calls)
}

func (s *RetrySuite) Test_Single_Attempt_Returns_Error() {

	calls := 0
	boom := errors.New("boom")

	err := retry.Do(context.Background(), 1, time.Hour, func() error {
		calls++
		return boom
	})

	s.ErrorIs(err, boom)
	s.Equal(1, calls)
}

func (s *RetrySuite) Test_Stops_On_Cancel() {

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := retry.Do(ctx, 5, time.Hour, func() error {
		calls++
		cancel()
		return errors.New("fail")
	})

	s.ErrorIs(err, context.Canceled)
	s.Equal(1, calls)
}

func TestRetrySuite(t *testing.T) {
	suite.Run(t, new(RetrySuite))
}
