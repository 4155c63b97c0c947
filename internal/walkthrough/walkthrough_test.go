package walkthrough

import (
	"bytes"
	"strings"
	"testing"

	"gatewayboot/internal/wizard"
)

const testAddr = "gw1qpzry9x8gf2tvdw0s3jn54khce6mua7lqpzry9"

// cancelAnswer scripts an operator dismissing a prompt.
type cancelAnswer struct{}

// scriptPrompter replays fixed answers, mirroring the wizard package's
// test double.
type scriptPrompter struct {
	t       *testing.T
	answers []interface{}
}

func (s *scriptPrompter) next(message string) interface{} {
	s.t.Helper()
	if len(s.answers) == 0 {
		s.t.Fatalf("unexpected prompt %q: script exhausted", message)
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a
}

func (s *scriptPrompter) Input(spec wizard.PromptSpec) (string, error) {
	switch a := s.next(spec.Message).(type) {
	case cancelAnswer:
		return "", wizard.ErrCancelled
	case string:
		return a, nil
	default:
		s.t.Fatalf("input prompt %q got scripted %T", spec.Message, a)
		return "", nil
	}
}

func (s *scriptPrompter) Select(spec wizard.PromptSpec) (string, error) {
	s.t.Fatalf("walkthrough asked a select prompt %q", spec.Message)
	return "", nil
}

func (s *scriptPrompter) MultiSelect(spec wizard.PromptSpec) ([]string, error) {
	s.t.Fatalf("walkthrough asked a multi-select prompt %q", spec.Message)
	return nil, nil
}

func (s *scriptPrompter) Confirm(message string, def bool) (bool, error) {
	switch a := s.next(message).(type) {
	case cancelAnswer:
		return false, wizard.ErrCancelled
	case bool:
		return a, nil
	default:
		s.t.Fatalf("confirm prompt %q got scripted %T", message, a)
		return false, nil
	}
}

func TestRunTestnetCompletes(t *testing.T) {
	script := &scriptPrompter{t: t, answers: []interface{}{
		false, true, // wallet step: skip copy, done
		testAddr,    // operator address
		true,        // faucet step: done
		false, true, // stake step: skip copy, done
		false, true, // verify step: skip copy, done
	}}
	var out bytes.Buffer

	if err := New(script, &out).Run(wizard.NetworkTestnet); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(script.answers) != 0 {
		t.Fatalf("%d scripted answers left unconsumed", len(script.answers))
	}

	output := out.String()
	if !strings.Contains(output, "faucet.testnet.gateway.network") {
		t.Errorf("testnet walkthrough missing faucet step:\n%s", output)
	}
	if !strings.Contains(output, "gateway-testnet-1") {
		t.Errorf("walkthrough missing chain id:\n%s", output)
	}
	if !strings.Contains(output, testAddr) {
		t.Errorf("verify command not rebuilt with operator address:\n%s", output)
	}
	if !strings.Contains(output, "walkthrough complete") {
		t.Errorf("missing completion message:\n%s", output)
	}
}

func TestRunDecliningAStepCancels(t *testing.T) {
	script := &scriptPrompter{t: t, answers: []interface{}{
		false, // wallet step: skip copy
		false, // not done: abort
	}}
	var out bytes.Buffer

	err := New(script, &out).Run(wizard.NetworkTestnet)
	if !IsCancelled(err) {
		t.Fatalf("err = %v, want cancellation", err)
	}
}

func TestRunDismissedConfirmCancels(t *testing.T) {
	script := &scriptPrompter{t: t, answers: []interface{}{
		cancelAnswer{}, // Ctrl+C at the copy prompt
	}}
	var out bytes.Buffer

	err := New(script, &out).Run(wizard.NetworkMainnet)
	if !IsCancelled(err) {
		t.Fatalf("err = %v, want cancellation", err)
	}
}

func TestRunRepromptsInvalidAddress(t *testing.T) {
	script := &scriptPrompter{t: t, answers: []interface{}{
		false, true, // wallet step
		"0xdeadbeef", // rejected: not bech32
		testAddr,     // accepted
		true,         // faucet step
		false, true,  // stake step
		false, true, // verify step
	}}
	var out bytes.Buffer

	if err := New(script, &out).Run(wizard.NetworkTestnet); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "not a gateway address") {
		t.Errorf("rejection message not shown:\n%s", out.String())
	}
}

func TestMainnetStepsHaveNoFaucet(t *testing.T) {
	w := New(nil, &bytes.Buffer{})
	steps := w.buildSteps(wizard.NetworkMainnet, networkParams[wizard.NetworkMainnet], testAddr)

	for _, s := range steps {
		for _, line := range s.lines {
			if strings.Contains(line, "faucet") {
				t.Errorf("mainnet step %q mentions the faucet", s.title)
			}
		}
	}
	found := false
	for _, s := range steps {
		for _, line := range s.lines {
			if strings.Contains(line, "Transfer at least") {
				found = true
			}
		}
	}
	if !found {
		t.Error("mainnet steps missing the funding instruction")
	}
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", testAddr, testAddr, false},
		{"trims whitespace", "  " + testAddr + "  ", testAddr, false},
		{"wrong prefix", "cosmos1qpzry9x8gf2tvdw0s3jn54khce6mua7lqpzry9", "", true},
		{"too short", "gw1qpzry9", "", true},
		{"invalid charset", "gw1" + strings.Repeat("b", 38), "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAddress(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidateAddress(%q) accepted", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateAddress(%q) rejected: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidateAddress(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
