/*
Package half allows to build and apply half-combination pipelines.

Concept

This package offers a symmetric perspective on images. It's based on the
idea that the image is split into two halves along the width axis, the
halves are combined into a single half and the result is mirrored back into
a full image. The processing has five stages:

    Split - the origin of halves;
    Pair - the arrangement of halves for reduction;
    Reduce - the combination of halves into a single half;
    Shape - the adjustment of channels;
    Mirror - the destination of processed half.

It implies the following constraints:

    Split and Mirror are fixed;
    Pair, Reduce and Shape are chosen from fixed sets of variants;
    All stages are executed sequentially.

Halves

For an image of width W the half width is ⌈W/2⌉. Left half holds columns
[0, ⌈W/2⌉) and right half holds columns [W-⌈W/2⌉, W). When W is odd both
halves contain the center column, so the mirrored result is one column wider
than the input.

Components

Pairers arrange two halves:

    Stack - both halves as two layers, reduced per pixel and per channel;
    ChannelConcat - channels of right half appended to channels of left half;
    Passthrough - one side only.

Reducers combine the arrangement into a single half. Mean, GlitchedMean,
WrapSum, Min and Max expect stacked layers. JointMin and JointMax expect
concatenated channels and collapse them into one. Identity and Flip expect a
single layer. WrapSum and GlitchedMean keep 8-bit wraparound: the sum is
taken modulo 256.

Shapers adjust the reduced half. Keep leaves it as is, Replicate copies a
single channel into several.

Pipeline

Components are bound together into a pipeline:

    p := half.New(half.Stack(), half.Mean, half.Keep(), half.WithName("average_halves"))
    result, err := p.Apply(img)

Apply never changes the provided image.
*/
package half
