package assets

import (
	"context"

	"github.com/google/uuid"

	"weft/internal/services"
)

// OutfitComposer is the surface for assembling a full worn set from an
// inventory outfit folder. The operation is declared so callers have a
// stable surface, but composition itself is not implemented: the upstream behavior is an empty
// intake loop, and replacing the worn set wholesale is driven by the
// server's wearables updates instead.
type OutfitComposer struct {
	Inventory Inventory
}

// WearOutfit resolves the folder for diagnostics and then reports that
// outfit composition is unsupported.
func (o *OutfitComposer) WearOutfit(ctx context.Context, folderID uuid.UUID) error {
	if o.Inventory != nil {
		if _, err := o.Inventory.FolderContents(ctx, folderID); err != nil {
			return services.Wrap(services.ErrNotFound, "outfit", "folder contents", folderID.String(), err)
		}
	}
	return services.Wrap(services.ErrValidation, "outfit", "wear", "outfit composition not supported", nil)
}
