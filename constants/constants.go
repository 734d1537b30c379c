package constants

const AppName = "ragakey"

// EnvPrefix namespaces environment overrides, e.g. RAGAKEY_MASK.
const EnvPrefix = "RAGAKEY"

const DefaultConfigName = ".ragakey"
const DefaultConfigType = "toml"

const DefaultOutDir = "./out"

const DefaultPort = 8080

// chart geometry, in pixels
const DefaultCellSize = 50

// TODO: read velocity and tempo from config once export grows past a demo
const ExportTempoBPM = 90
const ExportVelocity = 100
const ExportBaseNote = 60 // middle C
