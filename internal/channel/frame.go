package channel

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
)

// Frame types of the push protocol.
const (
	FrameHello     = 0
	FrameSubscribe = 5
	FrameEvent     = 8
)

// subscribeFrame is sent once per connection after the server says hello.
var subscribeFrame = []byte(fmt.Sprintf(`[%d, %q]`, FrameSubscribe, domain.TopicPackageCreated))

// frame is an inbound array frame `[type, ...payload]`.
type frame struct {
	Type    int
	Payload []json.RawMessage
}

func decodeFrame(data []byte) (frame, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return frame{}, fmt.Errorf("decode frame: %w", err)
	}
	if len(parts) == 0 {
		return frame{}, fmt.Errorf("decode frame: empty array")
	}
	var typ int
	if err := json.Unmarshal(parts[0], &typ); err != nil {
		return frame{}, fmt.Errorf("decode frame type: %w", err)
	}
	return frame{Type: typ, Payload: parts[1:]}, nil
}

// packageEvent extracts a PackageCreated from `[8, <ignored>, {package, state}]`.
// Any other payload shape reports false.
func (f frame) packageEvent() (domain.PackageCreated, bool) {
	if f.Type != FrameEvent || len(f.Payload) < 2 {
		return domain.PackageCreated{}, false
	}
	var body struct {
		Package json.RawMessage `json:"package"`
		State   string          `json:"state"`
	}
	if err := json.Unmarshal(f.Payload[1], &body); err != nil {
		return domain.PackageCreated{}, false
	}
	pkg := bytes.TrimSpace(body.Package)
	if len(pkg) == 0 || pkg[0] != '{' {
		return domain.PackageCreated{}, false
	}
	return domain.PackageCreated{Package: pkg, State: body.State}, true
}

func frameLabel(typ int) string {
	switch typ {
	case FrameHello:
		return "hello"
	case FrameEvent:
		return "event"
	default:
		return "other"
	}
}
