package catalog

import "fmt"

// Tone identifies a supported writing tone.
type Tone string

const (
	ToneFormal     Tone = "formal"
	ToneSemiFormal Tone = "semi_formal"
	ToneFriendly   Tone = "friendly"
)

// DefaultTone is used when a request does not specify a tone.
const DefaultTone = ToneFormal

// Tones returns all supported tones in display order.
func Tones() []Tone {
	return []Tone{ToneFormal, ToneSemiFormal, ToneFriendly}
}

// ParseTone validates a tone key. An empty key resolves to DefaultTone;
// an unrecognized key is an error.
func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case "":
		return DefaultTone, nil
	case ToneFormal, ToneSemiFormal, ToneFriendly:
		return Tone(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTone, s)
	}
}

// DisplayName returns the label shown to users.
func (t Tone) DisplayName() string {
	switch t {
	case ToneSemiFormal:
		return "Semi-formal"
	case ToneFriendly:
		return "Friendly"
	default:
		return "Formal"
	}
}

// Description returns the natural-language phrase used in generation prompts.
func (t Tone) Description() string {
	switch t {
	case ToneSemiFormal:
		return "semi-formal and respectful"
	case ToneFriendly:
		return "friendly but professional"
	default:
		return "very formal and professional"
	}
}
