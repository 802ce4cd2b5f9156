// Package model defines the data types shared across the application.
//
// The central entity is the [Card]: a [Station] (operator identity,
// equipment and image references, persisted between sessions) paired
// with a [Contact] (the per-QSO fields, filled in fresh for every
// card). The field set is fixed; there is no dynamic schema.
//
// Station fields carry the JSON tags used by the settings file, so the
// type doubles as its wire format. Contact checkbox fields use small
// typed enums ([QTHType], [QSLType], [QSLRequest]) that implement
// pflag.Value and bind directly to command-line flags.
package model
