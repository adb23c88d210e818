// Package assetcache persists fetched source assets in a local SQLite
// database so repeated runs avoid refetching wearable bodies and textures.
package assetcache
