// Package telemetry captures anonymous command usage events.
package telemetry

import (
	"io"
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/posthog/posthog-go"

	"localiser/internal/environment"
)

type Client interface {
	io.Closer
	Enqueue(posthog.Message) error
}

var singleClient Client
var machineID string

type CommandTelemetry struct {
	Command   string                 `json:"command"`
	Success   bool                   `json:"success"`
	ExitCode  int                    `json:"exitCode"`
	Error     error                  `json:"error,omitempty"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// SetClientForTesting swaps the posthog client and returns a restore function.
func SetClientForTesting(client Client) func() {
	previous := singleClient
	singleClient = client
	return func() {
		singleClient = previous
	}
}

func getMachineID() string {
	envMachineID, hasEnvID := os.LookupEnv("MACHINE_ID")

	if hasEnvID {
		return envMachineID
	}

	machineID, _ = machineid.ID()
	return machineID
}

func initClient() Client {
	if singleClient != nil {
		return singleClient
	}
	machineID = getMachineID()

	pc, _ := posthog.NewWithConfig(
		environment.PosthogAPIKey(),
		posthog.Config{
			Endpoint: "https://eu.i.posthog.com",
		},
	)
	singleClient = pc
	return singleClient
}

func optedOut() bool {
	_, present := os.LookupEnv("LOCALISER_TELEMETRY_OPTOUT")
	return present
}

func Capture(event string, properties map[string]interface{}) {
	if optedOut() {
		return
	}

	client := initClient()
	_ = client.Enqueue(posthog.Capture{
		Event:      event,
		DistinctId: machineID,
		Properties: properties,
	})
	_ = client.Close()
}

func RecordCommand(command CommandTelemetry) {
	properties := map[string]interface{}{
		"type":     "command",
		"success":  command.Success,
		"exitCode": command.ExitCode,
	}

	if command.Error != nil {
		properties["error"] = command.Error.Error()
	}

	if command.Arguments != nil {
		properties["arguments"] = command.Arguments
	}

	Capture(command.Command, properties)
}
