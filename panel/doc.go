// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package panel renders paged voting panels and decodes their controls.

Each category is one page. A panel shows the category header, one button per
option, prev/next buttons where a neighbouring page exists, and a
remaining-votes button.

# Stateless Paging

Nothing about a panel is kept in memory. Every control's custom ID carries
the page it was rendered on:

	vote:<page>:<option index>:<tag>
	prev:<page>:<tag>
	next:<page>:<tag>
	remaining:<page>:<tag>

The tag is an HMAC from package auth. Decode checks the tag and that the
page and option still exist in the catalog, then returns an Interaction.
Paging renders a brand new panel:

	in, err := builder.Decode(customID)
	page, err := builder.Transition(in.Page, in.Kind)
	p, err := builder.Render(page)

Selecting an option never changes the page.
*/
package panel
