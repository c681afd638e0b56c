// Package cmd - chat command
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"paint-quote/core/completion"
	"paint-quote/core/confidence"
	"paint-quote/core/conversation"
	"paint-quote/core/output"
	"paint-quote/core/pricing"
	"paint-quote/core/types"
	"paint-quote/internal/config"
	"paint-quote/internal/logging"
)

var (
	chatCompany     string
	chatCompanyName string
	chatRateCard    string
	chatProjectType string
	chatPaints      []string
	chatFormat      string
)

// chatCmd runs an interactive quoting conversation
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Gather a quote through an interactive conversation",
	Long: `Start an interactive quoting conversation on the terminal.

The transcript is kept in memory for the session. Commands:
  /info   print the structured quote data gathered so far
  /why    explain the completeness score
  /price  price the gathered measurements against the rate card
  /quit   leave the conversation

Without a configured API key the assistant answers with deterministic
mock responses.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatCompany, "company", "", "company id whose rate card is used")
	chatCmd.Flags().StringVar(&chatCompanyName, "company-name", "", "company name shown to the assistant")
	chatCmd.Flags().StringVar(&chatRateCard, "rate-card", "", "rate card file (.hcl or .json)")
	chatCmd.Flags().StringVar(&chatProjectType, "project-type", "", "project type hint (interior, exterior, both)")
	chatCmd.Flags().StringSliceVar(&chatPaints, "paint", nil, "preferred paint product (repeatable)")
	chatCmd.Flags().StringVarP(&chatFormat, "format", "f", "cli", "turn output format (cli, json)")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.Get()
	format, err := output.ParseFormat(chatFormat)
	if err != nil {
		return err
	}
	rc, err := resolveRateCard(chatRateCard, chatCompany)
	if err != nil {
		return fmt.Errorf("failed to load rate card: %w", err)
	}

	client := completion.NewFromConfig(ctx, cfg.Completion)
	orchestrator := conversation.New(client)
	sessionID := uuid.NewString()
	logging.Debug("chat session started",
		zap.String("session_id", sessionID),
		zap.String("provider", client.ProviderName()))

	state := conversation.Context{
		CompanyID:       chatCompany,
		CompanyName:     chatCompanyName,
		RateCard:        rc,
		ProjectType:     types.ParseProjectType(chatProjectType),
		PreferredPaints: chatPaints,
		Info:            types.NewQuoteInformation(),
		Stage:           types.StageGreeting,
	}
	var history []types.ConversationTurn

	fmt.Println("Describe the painting job. Type /quit to leave.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nyou> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/info":
			if err := printJSON(state.Info); err != nil {
				return err
			}
			continue
		case "/why":
			fmt.Print(confidence.Score(state.Info).Explain())
			continue
		case "/price":
			if err := priceConversation(state, sessionID, format); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		res, err := orchestrator.ProcessTurn(ctx, line, state, history)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		history = res.Transcript
		state.Info = res.MergedInfo
		state.Stage = res.Stage

		if err := output.RenderTurn(os.Stdout, format, res, cfg.Output.ShowConfidence); err != nil {
			return err
		}
		if res.Stage == types.StageComplete {
			fmt.Println("\nQuote confirmed.")
			return priceConversation(state, sessionID, format)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	return scanner.Err()
}

func priceConversation(state conversation.Context, sessionID string, format output.Format) error {
	surfaces := pricing.SurfacesFromInfo(state.Info)
	quote, err := pricing.Price(surfaces, state.RateCard)
	if err != nil {
		return err
	}
	inputHash, err := pricing.Fingerprint(surfaces, state.RateCard)
	if err != nil {
		return err
	}

	info := state.Info
	result := &output.QuoteResult{
		ID:          sessionID,
		Source:      "chat",
		Info:        &info,
		Quote:       quote,
		Assumptions: surfaceAssumptions(info),
		Metadata: output.QuoteMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			CompanyID: state.CompanyID,
			InputHash: inputHash,
			Version:   Version,
		},
	}
	return output.Render(os.Stdout, format, result, output.Options{ShowDetails: config.Get().Output.ShowDetails})
}

// surfaceAssumptions explains the defaults applied when mapping gathered
// measurements onto surfaces
func surfaceAssumptions(info types.QuoteInformation) []string {
	var out []string
	if !info.ProjectType.IsValid() {
		out = append(out, "project type not stated; priced as interior")
	}
	if info.Measurements.WallSqft > 0 || info.Measurements.CeilingSqft > 0 {
		out = append(out, fmt.Sprintf("%d coats on wall and ceiling areas", types.DefaultCoats))
	}
	if info.Measurements.IsZero() {
		out = append(out, "no measurements gathered; quote is empty")
	}
	for _, c := range []struct {
		name  string
		count float64
	}{{"door", info.Measurements.Doors}, {"window", info.Measurements.Windows}} {
		n, adjusted := pricing.WholeUnits(c.count)
		switch {
		case adjusted && n == 0:
			out = append(out, fmt.Sprintf("%s count %g rounds to zero; %ss not priced", c.name, c.count, c.name))
		case adjusted:
			out = append(out, fmt.Sprintf("%s count %g capped at %d", c.name, c.count, n))
		}
	}
	return out
}
