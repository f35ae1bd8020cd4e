// Package keylog is a per-key leveled logging facade.
//
// Callers register keys, usually one per subsystem, at a minimum level.
// A log call for a key is written only when the key's threshold permits
// it, or when the process-wide override threshold does, in which case the
// line is marked "(Override):".
//
//	var netKey = keylog.NewKey("net")
//
//	keylog.AddKey(netKey, keylog.Warn)
//	keylog.LogInfo(netKey, "connecting") // dropped
//	keylog.LogWarn(netKey, "slow")       // Warn: net: slow
//
//	keylog.WrapOverride(keylog.Debug, func() {
//	    keylog.LogDebug(netKey, "handshake") // (Override): Debug: net: handshake
//	})
//
// Keys are compared by identity: two keys created with the same name are
// different keys. The package-level functions act on a default facade that
// writes to standard output; use NewFacade for an isolated instance.
package keylog
