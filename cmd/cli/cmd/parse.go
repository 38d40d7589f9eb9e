package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mediadex/mediatag/pkg/core/metadata"
	"github.com/mediadex/mediatag/pkg/core/release"
)

var (
	parseCaption string
	parseJSON    bool
	parseGroup   bool
)

// parseCmd represents the parse command.
var parseCmd = &cobra.Command{
	Use:   "parse [name...]",
	Short: "Parse one or more release names",
	Long: `Parses release names given as arguments, or read line by line from
stdin when no arguments are given.

Examples:
  mediatag parse "Star.Wars.Visions.S02E09.1080p.WEBRip.x265-PSA.mkv"
  mediatag parse --json --group "Inception.2010.1080p.BluRay.x264-GROUP.mkv"
  cat names.txt | mediatag parse --json`,
	RunE: runParse,
}

func init() {
	RootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseCaption, "caption", "c", "", "Message caption parsed together with the name")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Emit one JSON object per input")
	parseCmd.Flags().BoolVar(&parseGroup, "group", false, "Also run the second-opinion parser for the release group")
}

func runParse(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				names = append(names, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no names to parse: pass arguments or pipe lines on stdin")
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		var meta *metadata.FileMeta
		if parseGroup {
			meta = metadata.Consolidate(parseCaption, name)
		} else {
			meta = &metadata.FileMeta{
				Metadata: release.Parse(parseCaption, name),
				FileName: name,
				Caption:  parseCaption,
			}
		}

		if parseJSON {
			data, err := json.MarshalIndent(meta, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result for %q: %w", name, err)
			}
			fmt.Fprintln(out, string(data))
			continue
		}
		printMeta(out, meta)
	}
	return nil
}

// printMeta writes the human-readable block for one parsed name, skipping
// absent fields.
func printMeta(out io.Writer, meta *metadata.FileMeta) {
	fmt.Fprintf(out, "Input: %s\n", meta.FileName)
	fmt.Fprintf(out, "  Type: %s\n", meta.Type)
	if meta.Title != "" {
		fmt.Fprintf(out, "  Title: %s\n", meta.Title)
	}
	if meta.Year != 0 {
		fmt.Fprintf(out, "  Year: %d\n", meta.Year)
	}
	if meta.Season != 0 || meta.Episode != 0 {
		fmt.Fprintf(out, "  Episode: S%02dE%02d\n", meta.Season, meta.Episode)
	}
	if meta.Quality != "" {
		fmt.Fprintf(out, "  Quality: %s\n", meta.Quality)
	}
	if meta.Rip != "" {
		fmt.Fprintf(out, "  Rip: %s\n", meta.Rip)
	}
	if meta.Source != "" {
		fmt.Fprintf(out, "  Source: %s\n", meta.Source)
	}
	if meta.Resolution != "" {
		fmt.Fprintf(out, "  Resolution: %s\n", meta.Resolution)
	}
	if meta.Audio != "" {
		fmt.Fprintf(out, "  Audio: %s\n", meta.Audio)
	}
	if meta.AudioChannels != "" {
		fmt.Fprintf(out, "  Channels: %s\n", meta.AudioChannels)
	}
	if meta.VideoCodec != "" {
		fmt.Fprintf(out, "  Video Codec: %s\n", meta.VideoCodec)
	}
	if meta.BitDepth != "" {
		fmt.Fprintf(out, "  Bit Depth: %s\n", meta.BitDepth)
	}
	if meta.HDRFormat != "" {
		fmt.Fprintf(out, "  HDR: %s\n", meta.HDRFormat)
	}
	if meta.IMDB != "" {
		fmt.Fprintf(out, "  IMDb: %s\n", meta.IMDB)
	}
	if meta.Extension != "" {
		fmt.Fprintf(out, "  Extension: %s\n", meta.Extension)
	}
	if meta.ReleaseGroup != "" {
		fmt.Fprintf(out, "  Release Group: %s\n", meta.ReleaseGroup)
	}
	fmt.Fprintln(out, "--------------------------------------------------")
}
