package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/ecoleta/registrar/internal/dataset"
	"github.com/ecoleta/registrar/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRegisterCmd() *cobra.Command {
	var draftPath string
	var dryRun bool
	var fields models.PointDraft
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Fill in and submit one collection point",
		Long: `Fills in a registration form and submits it to the registry.

The form is filled from a YAML, JSON lines or Parquet draft file, from flags, or both; flags
override the draft. Without --lat/--lng the marker stays where geolocation
put it.`,
		Example: `  # Register from flags
  registrar register --name "Mercado X" --email x@y.com --whatsapp 11999999999 \
    --uf SP --city "São Paulo" --items 2,5 --lat -23.5 --lng -46.6 --image photo.jpg

  # Register from a draft, overriding the city
  registrar register --draft point.yaml --city Campinas

  # Show the payload without sending it
  registrar register --draft point.yaml --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := models.PointDraft{}
			if draftPath != "" {
				drafts, err := dataset.NewLoader(draftPath).Load()
				if err != nil {
					return err
				}
				if len(drafts) != 1 {
					return fmt.Errorf("draft file must hold exactly one point, found %d", len(drafts))
				}
				draft = drafts[0]
			}
			draft = mergeDraft(draft, fields, cmd.Flags(), lat, lng)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			service := newClients(cfg).service(logNavigator{}, printNotifier{w: out})
			outcome := service.Register(cmd.Context(), draft, dryRun)
			if outcome.Error != "" {
				return errors.New(outcome.Error)
			}

			if dryRun {
				printPayload(out, outcome.Payload)
				return nil
			}
			if outcome.Created != nil && outcome.Created.ID != 0 {
				fmt.Fprintf(out, "Point id: %d\n", outcome.Created.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&draftPath, "draft", "", "Path to a point draft (.yaml, .yml, .jsonl, .json, .parquet)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the assembled payload instead of submitting it")
	cmd.Flags().StringVar(&fields.Name, "name", "", "Entity name")
	cmd.Flags().StringVar(&fields.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&fields.WhatsApp, "whatsapp", "", "Contact WhatsApp number")
	cmd.Flags().StringVar(&fields.State, "uf", "", "State code, e.g. SP")
	cmd.Flags().StringVar(&fields.City, "city", "", "City name as listed by 'registrar cities'")
	cmd.Flags().Int64SliceVar(&fields.Items, "items", nil, "Category ids, e.g. 2,5")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Marker latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Marker longitude")
	cmd.Flags().StringVar(&fields.Image, "image", "", "Photo path or URL")

	return cmd
}

// mergeDraft overrides draft with the flags that were set
func mergeDraft(draft, fields models.PointDraft, set *pflag.FlagSet, lat, lng float64) models.PointDraft {
	text := map[string]struct{ dst, src *string }{
		"name":     {&draft.Name, &fields.Name},
		"email":    {&draft.Email, &fields.Email},
		"whatsapp": {&draft.WhatsApp, &fields.WhatsApp},
		"uf":       {&draft.State, &fields.State},
		"city":     {&draft.City, &fields.City},
		"image":    {&draft.Image, &fields.Image},
	}
	for name, f := range text {
		if set.Changed(name) {
			*f.dst = *f.src
		}
	}
	if set.Changed("items") {
		draft.Items = fields.Items
	}
	if set.Changed("lat") {
		draft.Latitude = &lat
	}
	if set.Changed("lng") {
		draft.Longitude = &lng
	}
	return draft
}

func printPayload(w io.Writer, p *models.OutboundPayload) {
	for _, field := range p.Fields() {
		fmt.Fprintf(w, "%-10s %s\n", field.Name+":", field.Value)
	}
	if p.Image != nil {
		fmt.Fprintf(w, "%-10s %s (%s, %dx%d, %d bytes)\n", "image:", p.Image.Name, p.Image.ContentType, p.Image.Width, p.Image.Height, len(p.Image.Data))
	}
}
