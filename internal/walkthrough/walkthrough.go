// Package walkthrough guides the operator through the manual wallet
// creation and staking steps that cannot be automated. It consumes only
// the confirmed configuration's network choice.
package walkthrough

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gatewayboot/internal/ui"
	"gatewayboot/internal/wizard"
)

// params holds the network-specific values substituted into the
// instructions.
type params struct {
	ChainID   string
	MinStake  string
	FaucetURL string
	Explorer  string
}

var networkParams = map[wizard.Network]params{
	wizard.NetworkTestnet: {
		ChainID:   "gateway-testnet-1",
		MinStake:  "1000000000ugate",
		FaucetURL: "https://faucet.testnet.gateway.network",
		Explorer:  "https://explorer.testnet.gateway.network",
	},
	wizard.NetworkMainnet: {
		ChainID:  "gateway-1",
		MinStake: "15000000000ugate",
		Explorer: "https://explorer.gateway.network",
	},
}

// addressPattern matches a bech32 gateway account address. Same
// contract shape as the wizard's field validators: normalize or reject
// with a message the prompt shows verbatim.
var addressPattern = regexp.MustCompile(`^gw1[02-9ac-hj-np-z]{38,58}$`)

// ValidateAddress trims and checks an operator account address.
func ValidateAddress(raw string) (string, error) {
	addr := strings.TrimSpace(raw)
	if !addressPattern.MatchString(addr) {
		return "", fmt.Errorf("%q is not a gateway address - it starts with gw1 followed by bech32 characters", raw)
	}
	return addr, nil
}

// step is one manual action with an optional command the operator can
// copy to the clipboard.
type step struct {
	title   string
	lines   []string
	command string
}

// Walkthrough prints the staking instructions and waits for the
// operator to confirm each step.
type Walkthrough struct {
	prompter wizard.Prompter
	out      io.Writer
}

func New(p wizard.Prompter, out io.Writer) *Walkthrough {
	return &Walkthrough{prompter: p, out: out}
}

// Run walks the operator through wallet creation, funding, staking,
// and verification for the given network. Declining or dismissing a
// confirmation returns wizard.ErrCancelled; the configuration is
// already confirmed and exported by then, so callers treat it as a
// notice rather than a failure.
func (w *Walkthrough) Run(network wizard.Network) error {
	p := networkParams[network]

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, ui.Summary("Wallet and staking setup", [][2]string{
		{"network", string(network)},
		{"chain id", p.ChainID},
		{"minimum stake", p.MinStake},
	}))
	fmt.Fprintln(w.out)

	// The stake and verify commands need the operator's address, so it
	// is collected after the wallet-creation step.
	steps := w.buildSteps(network, p, "")
	addr := ""

	// Indexed loop: the steps slice is rebuilt mid-walkthrough once the
	// operator address is known.
	for i := 0; i < len(steps); i++ {
		s := steps[i]
		fmt.Fprintf(w.out, "[%d/%d] %s\n", i+1, len(steps), s.title)
		for _, line := range s.lines {
			fmt.Fprintf(w.out, "    %s\n", line)
		}
		if s.command != "" {
			fmt.Fprintf(w.out, "    $ %s\n", s.command)
			copyIt, err := w.prompter.Confirm("Copy the command to your clipboard?", true)
			if err != nil {
				return err
			}
			if copyIt {
				ui.CopyToClipboard(s.command)
			}
		}

		done, err := w.prompter.Confirm("Done with this step?", true)
		if err != nil {
			return err
		}
		if !done {
			return wizard.ErrCancelled
		}

		// After the wallet exists, ask for its address and rebuild the
		// remaining commands with it substituted in.
		if i == 0 {
			addr, err = w.askAddress()
			if err != nil {
				return err
			}
			steps = w.buildSteps(network, p, addr)
		}
	}

	fmt.Fprintln(w.out, ui.Success("Staking walkthrough complete."))
	return nil
}

func (w *Walkthrough) askAddress() (string, error) {
	for {
		raw, err := w.prompter.Input(wizard.PromptSpec{
			Message: "Operator address",
			Help:    "The gw1... address printed when the wallet was created",
		})
		if err != nil {
			return "", err
		}
		addr, verr := ValidateAddress(raw)
		if verr != nil {
			fmt.Fprintln(w.out, ui.Warn(verr.Error()))
			continue
		}
		return addr, nil
	}
}

func (w *Walkthrough) buildSteps(network wizard.Network, p params, addr string) []step {
	if addr == "" {
		addr = "<operator-address>"
	}

	steps := []step{
		{
			title: "Create the operator wallet",
			lines: []string{
				"Generates a new key pair for the gateway operator account.",
				"Store the mnemonic somewhere safe before continuing.",
			},
			command: "gatewayd keys add gateway-operator",
		},
	}

	if network == wizard.NetworkTestnet {
		steps = append(steps, step{
			title: "Fund the wallet from the faucet",
			lines: []string{
				"Request test tokens for the operator address at:",
				p.FaucetURL,
			},
		})
	} else {
		steps = append(steps, step{
			title: "Fund the wallet",
			lines: []string{
				fmt.Sprintf("Transfer at least %s to the operator address", p.MinStake),
				"from an exchange or an existing wallet.",
			},
		})
	}

	steps = append(steps,
		step{
			title: "Stake the gateway",
			lines: []string{
				"Submits the staking transaction that registers this",
				"deployment as a gateway on " + p.ChainID + ".",
			},
			command: fmt.Sprintf("gatewayd tx gateway stake %s --from gateway-operator --chain-id %s", p.MinStake, p.ChainID),
		},
		step{
			title: "Verify the stake",
			lines: []string{
				"Confirms the gateway is registered and bonded.",
				"Also visible on the explorer: " + p.Explorer,
			},
			command: fmt.Sprintf("gatewayd query gateway show-gateway %s --chain-id %s", addr, p.ChainID),
		},
	)
	return steps
}

// IsCancelled reports whether an error from Run means the operator
// backed out, as opposed to a real failure.
func IsCancelled(err error) bool {
	return errors.Is(err, wizard.ErrCancelled)
}
