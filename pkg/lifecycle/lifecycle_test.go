package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedService struct {
	name     string
	events   *[]string
	startErr error
	stopErr  error
}

func (s *recordedService) Start(context.Context) error {
	*s.events = append(*s.events, "start:"+s.name)
	return s.startErr
}

func (s *recordedService) Stop(context.Context) error {
	*s.events = append(*s.events, "stop:"+s.name)
	return s.stopErr
}

func TestRunServerStartsInOrderStopsInReverse(t *testing.T) {
	var events []string

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunServer(ctx, &ServerOptions{
		ServiceName: "test",
		Services: []Service{
			&recordedService{name: "store", events: &events},
			&recordedService{name: "consumer", events: &events},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start:store",
		"start:consumer",
		"stop:consumer",
		"stop:store",
	}, events)
}

func TestRunServerStartFailureStopsStartedServices(t *testing.T) {
	var events []string

	errBoom := errors.New("boom")

	err := RunServer(context.Background(), &ServerOptions{
		ServiceName: "test",
		Services: []Service{
			&recordedService{name: "store", events: &events},
			&recordedService{name: "consumer", events: &events, startErr: errBoom},
		},
	})
	require.ErrorIs(t, err, errBoom)

	assert.Equal(t, []string{
		"start:store",
		"start:consumer",
		"stop:store",
	}, events)
}

func TestRunServerReportsStopErrors(t *testing.T) {
	var events []string

	errStop := errors.New("stop failed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunServer(ctx, &ServerOptions{
		ServiceName: "test",
		Services: []Service{
			&recordedService{name: "store", events: &events, stopErr: errStop},
		},
	})
	require.ErrorIs(t, err, errStop)
}
