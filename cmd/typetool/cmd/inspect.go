package cmd

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/movekit/movevm/model/layout"
	"github.com/movekit/movevm/model/move"
	"github.com/movekit/movevm/vm/types"
)

var flagTypeFile string

// inspectCmd reads a JSON type tree and prints every canonical artifact the
// core derives from it: formatted type, type tag, storage resource key, kind
// classification and value layout.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Derive tag, layout and kind of a JSON type tree",
	Run: func(cmd *cobra.Command, args []string) {
		data := readTypeInput()

		t, err := types.UnmarshalType(data)
		if err != nil {
			log.Fatal().Err(err).Msg("could not decode type tree")
		}

		if structType, ok := t.(*types.StructType); ok {
			if err := structType.Validate(); err != nil {
				log.Fatal().Err(err).Msg("struct descriptor is not well-formed")
			}
		}

		formatted, err := types.Format(t)
		if err != nil {
			log.Fatal().Err(err).Msg("type has no canonical rendering")
		}
		log.Info().Str("type", formatted).Msg("decoded type")

		tag, err := types.Tag(t)
		if err != nil {
			log.Fatal().Err(err).Msg("could not derive type tag")
		}
		log.Info().Str("tag", tag.String()).Msg("derived type tag")

		if structTag, ok := tag.(move.StructTag); ok {
			key, err := structTag.ResourceKey()
			if err != nil {
				log.Fatal().Err(err).Msg("could not derive resource key")
			}
			log.Info().Str("resource_key", hex.EncodeToString(key)).Msg("derived resource key")
		}

		info, typeLayout, err := types.LayoutAndKind(t)
		if err != nil {
			log.Fatal().Err(err).Msg("could not derive layout")
		}
		enc, err := layout.Encode(typeLayout)
		if err != nil {
			log.Fatal().Err(err).Msg("could not encode layout")
		}
		log.Info().
			Str("kind", info.Kind().String()).
			Str("layout", typeLayout.String()).
			Str("layout_encoding", hex.EncodeToString(enc)).
			Msg("derived layout and kind")
	},
}

func readTypeInput() []byte {
	if flagTypeFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("could not read type tree from stdin")
		}
		return data
	}
	data, err := os.ReadFile(flagTypeFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", flagTypeFile).Msg("could not read type tree file")
	}
	return data
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&flagTypeFile, "file", "f", "",
		"path to a JSON type tree (defaults to stdin)")
}
