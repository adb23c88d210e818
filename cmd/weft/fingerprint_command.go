package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"weft/internal/appearance"
)

func newFingerprintCommand() *cobra.Command {
	var layerName string

	cmd := &cobra.Command{
		Use:   "fingerprint [asset-id...]",
		Short: "Compute a layer's bake cache fingerprint from worn asset ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layer, ok := parseLayer(layerName)
			if !ok {
				return fmt.Errorf("unknown layer %q", layerName)
			}

			ids := make([]uuid.UUID, 0, len(args))
			for _, arg := range args {
				id, err := uuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse asset id %q: %w", arg, err)
				}
				ids = append(ids, id)
			}

			// Assign ids to the layer's slots in composition-table order.
			slots := layer.ContributingSlots()
			if len(ids) > len(slots) {
				return fmt.Errorf("layer %s takes at most %d contributing assets", layer, len(slots))
			}
			bySlot := make(map[appearance.WearableSlot]uuid.UUID, len(ids))
			for i, id := range ids {
				bySlot[slots[i]] = id
			}

			fp := appearance.LayerFingerprint(layer, func(slot appearance.WearableSlot) uuid.UUID {
				return bySlot[slot]
			})
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "layer:     %s\n", layer)
			fmt.Fprintf(out, "magic:     %s\n", appearance.MagicHash(layer))
			fmt.Fprintf(out, "plain:     %s\n", fp)
			fmt.Fprintf(out, "published: %s\n", appearance.PublishedFingerprint(layer, fp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&layerName, "layer", "l", "upper_body", "Bake layer (head, upper_body, lower_body, eyes, skirt, hair)")
	return cmd
}

func parseLayer(name string) (appearance.BakeLayer, bool) {
	for layer := appearance.BakeLayer(0); layer < appearance.BakeLayerCount; layer++ {
		if layer.String() == name {
			return layer, true
		}
	}
	return -1, false
}
