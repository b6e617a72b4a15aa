package theme

import (
	"bytes"
	"fmt"

	"tools.zach/dev/colorlit/internal/atomicfile"
)

// Normalize rewrites the theme file at path so every valid literal is in
// canonical hex form and the layout is the current schema version. The file
// is left untouched when it is already normalized.
//
// Only the literals change; everything else in the file is kept byte for
// byte. When that is not possible, for example because a role is set through
// a dotted key or an inline table, the file is not written and the error
// wraps [ErrNotInPlace].
//
// An empty file is left alone.
//
// Invalid literals are kept as written. When any exist, Normalize still
// rewrites the valid roles and returns a *[ResolveError] alongside the
// changed flag.
func Normalize(path string) (changed bool, err error) {
	var resolveErr error
	changed, err = atomicfile.Update(path, func(data []byte) ([]byte, error) {
		if len(bytes.TrimSpace(data)) == 0 {
			return data, nil
		}
		data, err := upgrade(data)
		if err != nil {
			return nil, err
		}
		t, err := decode(data)
		if err != nil {
			return nil, err
		}
		resolveErr = t.Canonicalize()
		return rewriteColors(data, t.Colors)
	})
	if err != nil {
		return false, fmt.Errorf("normalize theme %s: %w", path, err)
	}
	return changed, resolveErr
}
