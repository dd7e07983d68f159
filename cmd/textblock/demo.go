package main

import (
	"fmt"

	"github.com/ryanlewis/textblock"
)

const (
	demoPaddingX   = 6
	demoPaddingY   = 3
	demoFixedWidth = 40
)

const demoParagraph = `Lorem ipsum dolor sit amet, consectetur adipiscing elit. Phasellus ut velit tortor. Aliquam erat volutpat. Cras egestas augue vel convallis pretium. Curabitur nec orci eget ex condimentum efficitur. Mauris vehicula tristique purus, vel rutrum risus gravida vitae. Aenean metus enim, sodales aliquam felis at, porttitor consectetur diam.

Aenean tincidunt purus in justo dapibus, sit amet luctus enim pellentesque. Maecenas placerat nisl orci, in mollis nisl blandit a. Integer consequat interdum posuere. Etiam placerat dictum maximus. Donec at tortor lectus. Vivamus vulputate pulvinar lacinia.`

const demoSentence = `Lorem ipsum dolor sit amet, consectetur adipiscing elit. Vivamus non vehicula mi, a volutpat felis. Nunc vel venenatis magna, ut fermentum ipsum.`

// demoBlocks builds the layouts shown by --demo: a padded full-width block,
// a fixed column beside a fluid one, and three fixed columns with mixed
// alignment.
func demoBlocks() ([]textblock.Renderable, error) {
	framePadding := textblock.Padding{Top: demoPaddingY, Left: demoPaddingX, Right: demoPaddingX}

	full, err := textblock.NewBlock(demoParagraph, textblock.WithPadding(framePadding))
	if err != nil {
		return nil, fmt.Errorf("full block: %w", err)
	}

	left, err := textblock.NewBlock(demoSentence, textblock.WithWidth(demoFixedWidth))
	if err != nil {
		return nil, fmt.Errorf("fixed column: %w", err)
	}
	right, err := textblock.NewBlock(demoParagraph)
	if err != nil {
		return nil, fmt.Errorf("fluid column: %w", err)
	}
	twoColumn, err := textblock.NewColumns(
		[]textblock.Renderable{left, right},
		textblock.WithMargin(demoPaddingX),
		textblock.WithPadding(framePadding),
	)
	if err != nil {
		return nil, fmt.Errorf("two column layout: %w", err)
	}

	var aligned []textblock.Renderable
	for _, a := range []textblock.Align{textblock.AlignLeft, textblock.AlignRight, textblock.AlignLeft} {
		b, err := textblock.NewBlock(demoSentence, textblock.WithWidth(demoFixedWidth), textblock.WithAlign(a))
		if err != nil {
			return nil, fmt.Errorf("%s column: %w", a, err)
		}
		aligned = append(aligned, b)
	}
	framePadding.Bottom = demoPaddingY
	threeColumn, err := textblock.NewColumns(
		aligned,
		textblock.WithMargin(demoPaddingX),
		textblock.WithPadding(framePadding),
	)
	if err != nil {
		return nil, fmt.Errorf("three column layout: %w", err)
	}

	return []textblock.Renderable{full, twoColumn, threeColumn}, nil
}
