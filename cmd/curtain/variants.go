package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/curtain/pkg/curtain/locale"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

var variantsLang string

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List transition variants",
	Long:  `Lists every transition variant with its panel count and the profiles that ship it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := locale.New(variantsLang)
		if err != nil {
			return err
		}
		printVariants(cmd.OutOrStdout(), l, termenv.ColorProfile())
		return nil
	},
}

func init() {
	variantsCmd.Flags().StringVar(&variantsLang, "lang", "en", "Language for names and descriptions")
	rootCmd.AddCommand(variantsCmd)
}

var profiles = []transition.Profile{transition.ProfileMinimal, transition.ProfileExtended}

func printVariants(w io.Writer, l *locale.Localizer, p termenv.Profile) {
	row := "%-20s %-12s %-7s %-18s %s\n"

	header := fmt.Sprintf(row,
		l.Message(locale.HeaderVariant), "", l.Message(locale.HeaderPanels),
		l.Message(locale.HeaderProfiles), l.Message(locale.HeaderDescription))
	fmt.Fprint(w, p.String(header).Bold())

	for _, v := range transition.Variants() {
		var enabled []string
		for _, profile := range profiles {
			if profile.Includes(v) {
				enabled = append(enabled, string(profile))
			}
		}

		panels := composePanels(transition.Config{Variant: v})
		line := fmt.Sprintf(row, l.VariantLabel(v), v, fmt.Sprint(len(panels)),
			strings.Join(enabled, ","), l.VariantDescription(v))

		style := p.String(line)
		if transition.ProfileMinimal.Includes(v) {
			style = style.Foreground(p.Color("#34d399"))
		} else {
			style = style.Foreground(p.Color("#818cf8"))
		}
		fmt.Fprint(w, style)
	}
}
