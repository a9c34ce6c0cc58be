package cli

import (
	"encoding/json"

	"github.com/goliatone/go-polaris/pkg/wire"
)

func jsonRoundTrip(v wire.Value, target any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}
