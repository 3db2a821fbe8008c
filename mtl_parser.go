package objimport

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// textureMapOptionArgs gives the number of space-delimited argument tokens
// each texture-map option consumes, used by skipUnsupportedOptions to find
// the image path at the tail of a map_ line (spec.md §4.4).
var textureMapOptionArgs = map[string]int{
	"-blendu":  1,
	"-blendv":  1,
	"-boost":   1,
	"-mm":      2,
	"-o":       3,
	"-s":       3,
	"-t":       3,
	"-texres":  1,
	"-clamp":   1,
	"-bm":      1,
	"-imfchan": 1,
}

// skipUnsupportedOptions finds the last (by byte position) recognized
// option keyword in line, drops everything through it plus the space
// following it, then drops that option's declared number of
// space-delimited argument tokens, leaving the image path. If no
// recognized option appears, line is returned unchanged.
func skipUnsupportedOptions(line []byte) []byte {
	lastPos := -1
	var lastOpt string
	for opt := range textureMapOptionArgs {
		pos := bytes.Index(line, []byte(opt))
		if pos >= 0 && pos >= lastPos {
			lastPos = pos
			lastOpt = opt
		}
	}
	if lastOpt == "" {
		return line
	}

	rest := line[lastPos+len(lastOpt):]
	rest = bytes.TrimLeft(rest, " ")

	for i := 0; i < textureMapOptionArgs[lastOpt]; i++ {
		pos := bytes.IndexByte(rest, ' ')
		if pos < 0 {
			break
		}
		rest = bytes.TrimLeft(rest[pos+1:], " ")
	}

	return rest
}

// fixBadMapKey normalizes texture-map key variants produced by other OBJ
// exporters: "refl" becomes "map_refl", and any key containing "bump"
// (including the correctly-cased "map_Bump") becomes "map_Bump".
func fixBadMapKey(key []byte) string {
	if bytesEqual(key, "refl") {
		return "map_refl"
	}
	if bytes.Contains(key, []byte("bump")) {
		return "map_Bump"
	}
	return string(key)
}

// findToken returns the index of the first field exactly equal to tok, or
// -1 if none matches.
func findToken(fields [][]byte, tok string) int {
	for i, f := range fields {
		if bytesEqual(f, tok) {
			return i
		}
	}
	return -1
}

func parseFloatField(fields [][]byte, i int, fallback float32) float32 {
	v, _ := parseFloat(fields[i], fallback)
	return v
}

// ParseMTLFile reads the material library at path and stores its
// materials into dst, keyed by name; a material with the same name as an
// existing entry replaces it (invariant: last newmtl wins). A failure to
// open path is reported to diag and is not an error: a referenced but
// missing MTL file simply contributes no materials (spec.md §4.5). A read
// error after the file is open is returned.
func ParseMTLFile(path string, dst map[string]*MTLMaterial, diag func(string)) error {
	f, err := os.Open(path)
	if err != nil {
		if diag != nil {
			diag("cannot read MTL file: " + path)
		}
		return nil
	}
	defer f.Close()

	mtlDir := filepath.Dir(path)

	var current *MTLMaterial
	lr := newLineReader(f)
	return lr.run(func(line []byte) {
		key, rest := splitLineKeyRest(line)
		if len(line) == 0 || len(rest) == 0 {
			return
		}

		fixedKey := fixBadMapKey(key)

		switch {
		case fixedKey == "newmtl":
			name := string(rest)
			if _, exists := dst[name]; exists {
				if diag != nil {
					diag("duplicate material found: '" + name + "', using the last encountered definition")
				}
			}
			current = newMTLMaterial(name)
			dst[name] = current

		case current == nil:
			// A data line before any newmtl has nothing to attach to.
			return

		case fixedKey == "Ns":
			current.Ns, _ = parseFloat(rest, 324.0)

		case fixedKey == "Ka":
			fields := splitByChar(rest, ' ')
			parseColor(fields, 0.0, &current.Ka)

		case fixedKey == "Kd":
			fields := splitByChar(rest, ' ')
			parseColor(fields, 0.8, &current.Kd)

		case fixedKey == "Ks":
			fields := splitByChar(rest, ' ')
			parseColor(fields, 0.5, &current.Ks)

		case fixedKey == "Ke":
			fields := splitByChar(rest, ' ')
			parseColor(fields, 0.0, &current.Ke)

		case fixedKey == "Ni":
			current.Ni, _ = parseFloat(rest, 1.45)

		case fixedKey == "d":
			current.D, _ = parseFloat(rest, 1.0)

		case fixedKey == "illum":
			current.Illum, _ = parseInt(rest, 2)

		case strings.Contains(fixedKey, "map_"):
			channel, ok := mtlKeyToChannel(fixedKey)
			if !ok {
				// No supported texture map found; skip silently.
				return
			}
			entry := current.TextureMaps[channel]
			if entry == nil {
				entry = &TextureMapEntry{}
				current.TextureMaps[channel] = entry
			}

			fields := splitByChar(rest, ' ')

			if pos := findToken(fields, "-o"); pos >= 0 && pos+3 < len(fields) {
				entry.Translation = Vec3{
					parseFloatField(fields, pos+1, 0.0),
					parseFloatField(fields, pos+2, 0.0),
					parseFloatField(fields, pos+3, 0.0),
				}
			}
			if pos := findToken(fields, "-s"); pos >= 0 && pos+3 < len(fields) {
				entry.Scale = Vec3{
					parseFloatField(fields, pos+1, 1.0),
					parseFloatField(fields, pos+2, 1.0),
					parseFloatField(fields, pos+3, 1.0),
				}
			}
			if pos := findToken(fields, "-bm"); pos >= 0 && pos+1 < len(fields) {
				current.MapBumpStrength = parseFloatField(fields, pos+1, 0.0)
			}
			if pos := findToken(fields, "-type"); pos >= 0 && pos+1 < len(fields) {
				// Only spherical projection is supported; any other
				// requested type still gets coded as sphere.
				entry.ProjectionType = 2
				if !bytesEqual(fields[pos+1], "sphere") {
					if diag != nil {
						diag("using projection type 'sphere', not: " + string(fields[pos+1]))
					}
				}
			}

			entry.ImagePath = string(skipUnsupportedOptions(rest))
			entry.MTLDirPath = mtlDir

		default:
			// Unrecognized scalar directive: ignored.
		}
	})
}

func parseColor(fields [][]byte, fallback float32, dst *Vec3) {
	for i := 0; i < 3; i++ {
		if i < len(fields) {
			dst[i], _ = parseFloat(fields[i], fallback)
		} else {
			dst[i] = fallback
		}
	}
}
