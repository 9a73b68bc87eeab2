package aqua

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"liyu1981.xyz/aquarium-service/pkg/aqua/mocks"
	"liyu1981.xyz/aquarium-service/pkg/db"
)

type testMocks struct {
	Aquarium    *mocks.MockIAquarium
	Measurement *mocks.MockIMeasurement
	Fish        *mocks.MockIFish
	Auth        *mocks.MockIAuth
}

type useMocks struct {
	Aquarium    bool
	Measurement bool
	Fish        bool
	Auth        bool
}

// GetMockAquaWithMemorySqliteDialector builds an Aqua over a fresh in-memory store and
// swaps in a gomock implementation for each service flagged in use.
func GetMockAquaWithMemorySqliteDialector(t *testing.T, use useMocks) (*gomock.Controller, *Aqua, testMocks) {
	ctrl := gomock.NewController(t)

	m := testMocks{
		Aquarium:    mocks.NewMockIAquarium(ctrl),
		Measurement: mocks.NewMockIMeasurement(ctrl),
		Fish:        mocks.NewMockIFish(ctrl),
		Auth:        mocks.NewMockIAuth(ctrl),
	}

	dbInstance := db.MustOpen(db.UseMemorySqliteDialector())
	t.Cleanup(func() { _ = dbInstance.Close() })

	aquaInstance := (&Aqua{Db: *dbInstance}).WithDefaultServices()

	opts := ServiceOpts{}
	if use.Aquarium {
		opts.Aquarium = m.Aquarium
	}
	if use.Measurement {
		opts.Measurement = m.Measurement
	}
	if use.Fish {
		opts.Fish = m.Fish
	}
	if use.Auth {
		opts.Auth = m.Auth
	}
	aquaInstance.WithServices(opts)

	return ctrl, aquaInstance, m
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
