package logging

// Standardized attribute keys. Components must use these rather than ad-hoc
// strings so console filtering and log queries stay stable.
const (
	FieldComponent = "component"
	FieldEventType = "event_type"
	FieldErrorHint = "error_hint"
	FieldImpact    = "impact"
	FieldRunSerial = "run_serial"
	FieldLayer     = "layer"
	FieldSlot      = "slot"
	FieldFace      = "face"
	FieldAssetID   = "asset_id"
	FieldTextureID = "texture_id"
	FieldRegionID  = "region_id"
)
