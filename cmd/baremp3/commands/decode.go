package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aikumo/baremp3/internal/errors"
	"github.com/aikumo/baremp3/internal/logging"
	"github.com/aikumo/baremp3/pkg/fileutil"
	"github.com/aikumo/baremp3/pkg/mp3"
	"github.com/aikumo/baremp3/pkg/pcm"
	"github.com/aikumo/baremp3/pkg/wav"
)

var (
	decodeOutput    string
	decodeOutputDir string
	decodeBitDepth  int
	decodeJobs      int
)

func init() {
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "",
		"output WAV path (single input only)")
	decodeCmd.Flags().StringVar(&decodeOutputDir, "output-dir", "",
		"directory for output WAV files")
	decodeCmd.Flags().IntVar(&decodeBitDepth, "bit-depth", 0,
		"output bit depth: 16 or 24 (default from config)")
	decodeCmd.Flags().IntVar(&decodeJobs, "jobs", 0,
		"number of files decoded concurrently (default from config)")
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode INPUT...",
	Short: "Decode MP3 files to WAV",
	Long: `Decode one or more MP3 files to WAV.

By default each output lands next to its input with a .wav extension.
Use -o for a single explicit output path or --output-dir to collect
all outputs in one directory. Multiple inputs decode concurrently up
to --jobs workers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	conf := loadedConfig()

	bitDepth := decodeBitDepth
	if bitDepth == 0 {
		bitDepth = conf.Output.BitDepth
	}
	if !pcm.ValidDepth(bitDepth) {
		return errors.NewUserError(errors.ErrInvalidBitDepth, "use --bit-depth 16 or 24")
	}

	jobs := decodeJobs
	if jobs == 0 {
		jobs = conf.Decode.Jobs
	}
	if jobs < 1 {
		return errors.NewUserError(errors.ErrInvalidJobs, "use --jobs 1 or higher")
	}

	if decodeOutput != "" && len(args) != 1 {
		return errors.NewUserError(nil, "-o takes a single input; use --output-dir for many")
	}

	outDir := decodeOutputDir
	if outDir == "" {
		outDir = conf.Output.Dir
	}

	cmdCtx := cmd.Context()
	if cmdCtx == nil {
		cmdCtx = context.Background()
	}
	logger := logging.FromContext(cmdCtx)

	g, ctx := errgroup.WithContext(cmdCtx)
	g.SetLimit(jobs)
	for _, input := range args {
		input := input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := outputPath(input, decodeOutput, outDir)
			return decodeFile(logger, input, out, bitDepth)
		})
	}
	return g.Wait()
}

// outputPath picks the WAV path for one input: the explicit -o path,
// else the input's name with a .wav extension in dir (or next to the
// input when dir is empty).
func outputPath(input, explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".wav"
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base)
}

func decodeFile(logger *slog.Logger, input, output string, bitDepth int) error {
	data, err := fileutil.ReadFileWithLimit(input)
	if err != nil {
		return errors.NewSystemError(err, "check the input path")
	}

	format, err := mp3.Probe(data)
	if err != nil {
		return errors.Wrapf(err, "probing %s", input)
	}
	if format.Samples == 0 {
		return errors.NewUserError(
			errors.Newf("%s: no decodable frames", input),
			"run 'baremp3 validate' to inspect the file")
	}

	out := make([][]float32, format.Channels)
	for ch := range out {
		out[ch] = make([]float32, format.Samples)
	}

	dec := mp3.NewDecoder()
	_, samples, err := dec.DecodeAll(data, out)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", input)
	}

	logger.Debug("decoded stream",
		"input", input,
		"samples", samples,
		"channels", format.Channels,
		"sample_rate", format.SampleRate)

	err = fileutil.AtomicWrite(output, 0o644, func(f *os.File) error {
		return wav.Encode(f, out, samples, format.SampleRate, bitDepth)
	})
	if err != nil {
		return errors.Wrapf(err, "writing %s", output)
	}

	logger.Info("wrote WAV file",
		"output", output,
		"bit_depth", bitDepth,
		"duration", fmt.Sprintf("%.2fs", float64(samples)/float64(format.SampleRate)))

	return nil
}
