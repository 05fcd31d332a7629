// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth signs panel control IDs.

Panels keep no server-side state: the page a control belongs to travels in
the control's custom ID and comes back with every button press. The
platform-supplied caller identity is trusted as-is; signing only keeps a
client from inventing control IDs for pages or options that were never
rendered.

# Signing

	signer, err := auth.NewSigner(cfg.PanelSecret)
	tag := signer.Sign("vote:2:5")
	err = signer.Verify("vote:2:5", tag)

The tag is the first 8 bytes of HMAC-SHA256, base62 encoded (alphanumeric
only, at most 11 characters), so a full control ID stays well under the
100-character custom ID limit common to chat platforms.
*/
package auth
