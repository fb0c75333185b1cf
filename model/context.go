/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"
	"sync"

	"github.com/inkwell-pdf/fontkit/common"
	"github.com/inkwell-pdf/fontkit/core"
)

// cacheKey identifies a font resource by its indirect object reference, so
// repeated lookups of the same font resource within a document reuse one
// FontDescriptor, per §4.1 and §5.
type cacheKey struct {
	num, gen int64
}

// Context is the document-scoped font cache and dispatch point from §4.1
// and §5: it routes a PDF font dictionary to the right loader (simple, CID,
// or Type3) by /Subtype, and caches the resulting FontDescriptor by
// indirect object reference so a font resource used on many pages is
// loaded once.
type Context struct {
	mu       sync.Mutex
	cache    map[cacheKey]*FontDescriptor
	Provider FontProvider
}

// NewContext creates a Context backed by the given FontProvider. A nil
// provider uses BundledFontProvider (§6).
func NewContext(provider FontProvider) *Context {
	if provider == nil {
		provider = BundledFontProvider{}
	}
	return &Context{
		cache:    make(map[cacheKey]*FontDescriptor),
		Provider: provider,
	}
}

// LoadFont implements the Dispatcher & Cache operation (§4.1): it resolves
// `fontObj` (expected to be a Font dictionary, directly or via an indirect
// reference) to a cached or freshly-loaded FontDescriptor. Errors from the
// underlying loader are wrapped with the object reference per §7's
// "cannot load font (<num> <gen> R)" convention when one is available.
func (ctx *Context) LoadFont(fontObj core.PdfObject) (*FontDescriptor, error) {
	key, hasKey := referenceKey(fontObj)

	if hasKey {
		ctx.mu.Lock()
		if cached, ok := ctx.cache[key]; ok {
			ctx.mu.Unlock()
			return cached.Keep(), nil
		}
		ctx.mu.Unlock()
	}

	desc, err := ctx.loadFontUncached(fontObj)
	if err != nil {
		if hasKey {
			return nil, fmt.Errorf("cannot load font (%d %d R): %w", key.num, key.gen, err)
		}
		return nil, fmt.Errorf("cannot load font: %w", err)
	}

	if hasKey {
		ctx.mu.Lock()
		ctx.cache[key] = desc
		ctx.mu.Unlock()
	}
	return desc.Keep(), nil
}

// referenceKey extracts the cache key from an indirect font object, if any.
func referenceKey(obj core.PdfObject) (cacheKey, bool) {
	ind, ok := core.GetIndirect(obj)
	if !ok {
		return cacheKey{}, false
	}
	return cacheKey{num: ind.ObjectNumber, gen: ind.GenerationNumber}, true
}

// loadFontUncached routes the resolved Font dictionary to the Simple-Font,
// CID-Font, or Type3 loader per the /Subtype routing table in §4.1, with
// the fallback policy for malformed dictionaries lacking a recognized
// /Subtype: a Type3 dictionary is recognized by the presence of
// /CharProcs, a CID font by the presence of /DescendantFonts, and anything
// else falls back to the Simple-Font loader, each logging a warning.
func (ctx *Context) loadFontUncached(fontObj core.PdfObject) (*FontDescriptor, error) {
	d, ok := core.GetDict(core.ResolveReference(fontObj))
	if !ok {
		return nil, core.ErrTypeError
	}

	subtype, _ := core.GetNameVal(d.Get("Subtype"))
	switch subtype {
	case "Type0":
		return ctx.loadCIDFont(d)
	case "Type1", "MMType1", "TrueType":
		return ctx.loadSimpleFont(d)
	case "Type3":
		return ctx.loadType3Font(d)
	}

	switch {
	case d.Get("CharProcs") != nil:
		common.Log.Debug("WARN: font dictionary has no recognized /Subtype %q, has /CharProcs: loading as Type3", subtype)
		return ctx.loadType3Font(d)
	case d.Get("DescendantFonts") != nil:
		common.Log.Debug("WARN: font dictionary has no recognized /Subtype %q, has /DescendantFonts: loading as Type0", subtype)
		return ctx.loadCIDFont(d)
	default:
		common.Log.Debug("WARN: font dictionary has no recognized /Subtype %q: loading as simple font", subtype)
		return ctx.loadSimpleFont(d)
	}
}
