package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mediadex/mediatag/pkg/core/imdb"
	"github.com/mediadex/mediatag/pkg/core/metadata"
)

// NewSuggestionClientFunc allows overriding the IMDb client creation for
// testing.
var NewSuggestionClientFunc = func() metadata.SuggestionClient {
	return imdb.NewClient()
}

var verifyCaption string

// verifyCmd represents the verify command.
var verifyCmd = &cobra.Command{
	Use:   "verify <name>",
	Short: "Parse a release name and confirm title/year against IMDb",
	Long: `Parses a release name, then queries the IMDb suggestion endpoint to
confirm the extracted title and year and report the matching id.

Example:
  mediatag verify "Inception.2010.1080p.BluRay.x264-GROUP.mkv"`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	RootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&verifyCaption, "caption", "c", "", "Message caption parsed together with the name")
}

func runVerify(cmd *cobra.Command, args []string) error {
	meta := metadata.Consolidate(verifyCaption, args[0])
	if meta.Title == "" && meta.IMDB == "" {
		return fmt.Errorf("no title could be extracted from %q", args[0])
	}

	logrus.WithFields(logrus.Fields{
		"title": meta.Title,
		"year":  meta.Year,
	}).Info("Looking up IMDb suggestions")

	id := metadata.VerifyIMDb(cmd.Context(), NewSuggestionClientFunc(), meta)

	out := cmd.OutOrStdout()
	if id == "" {
		fmt.Fprintf(out, "No IMDb match for %q\n", meta.Title)
		return nil
	}
	fmt.Fprintf(out, "Title: %s\n", meta.Title)
	if meta.Year != 0 {
		fmt.Fprintf(out, "Year: %d\n", meta.Year)
	}
	fmt.Fprintf(out, "IMDb: %s\n", id)
	return nil
}
