package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/service"
)

var stdin = bufio.NewReader(os.Stdin)

func promptString(label string) (string, error) {
	fmt.Print(label)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptInt re-asks until the user enters an integer within [min, max].
func promptInt(label string, min, max int) (int, error) {
	for {
		raw, err := promptString(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < min || n > max {
			fmt.Printf("❌ Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// promptIntDefault is promptInt with a fallback returned on empty input.
func promptIntDefault(label string, min, max, fallback int) (int, error) {
	for {
		raw, err := promptString(label)
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return fallback, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < min || n > max {
			fmt.Printf("❌ Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

func promptYesNo(label string) (bool, error) {
	raw, err := promptString(label)
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(raw)
	return answer == "y" || answer == "yes", nil
}

// consolePrompter asks whether a cached record should be reused.
type consolePrompter struct{}

func (consolePrompter) UseCached(p *model.Pokemon) (bool, error) {
	fmt.Printf("📦 %s is already cached. Use cached data? (y/n): ", p.Name)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading input: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "" || answer == "y" || answer == "yes", nil
}

// resolvePokemon loops until a name resolves to a full profile, offering
// suggestions after each miss. A blank name aborts.
func (a *app) resolvePokemon(ctx context.Context, label string) (*model.Pokemon, error) {
	for {
		name, err := promptString(label)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("no Pokémon selected")
		}

		p, source, err := a.service.GetPokemon(ctx, name, false, true)
		if err != nil {
			return nil, err
		}
		if p != nil {
			fmt.Printf("✅ Found %s (#%03d) [%s]\n", p.Name, p.ID, source)
			return p, nil
		}

		fmt.Printf("❌ No Pokémon named %q found.\n", name)
		a.suggest(ctx, name)
	}
}

func (a *app) suggest(ctx context.Context, input string) {
	matches, err := a.service.SearchNames(ctx, input, 5, service.SearchBoth)
	if err != nil || len(matches) == 0 {
		matches, _ = a.service.SuggestNames(input, 5)
	}
	if len(matches) > 0 {
		fmt.Printf("💡 Did you mean: %s?\n", strings.Join(matches, ", "))
	}
}

// deliver prints the generated text and copies it to the clipboard unless
// disabled.
func deliver(text string) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println(text)
	fmt.Println(strings.Repeat("=", 50))

	if noClip {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️ Could not copy to clipboard: %v\n", err)
		return
	}
	fmt.Println("📋 Text copied to clipboard!")
}

// promptShiny asks for shiny availability, defaulting to the cached flag.
func promptShiny(p *model.Pokemon) (bool, error) {
	suggested := "n"
	if p.ShinyAvail {
		suggested = "y"
	}
	raw, err := promptString(fmt.Sprintf("✨ Will the shiny form be available? (y/n) [%s]: ", suggested))
	if err != nil {
		return false, err
	}
	if raw == "" {
		return p.ShinyAvail, nil
	}
	answer := strings.ToLower(raw)
	return answer == "y" || answer == "yes", nil
}
