package barskema

// EncodePreserving encodes d.Value and omits top-level optional fields that
// were absent from the document d was decoded from. Fields that arrived as
// explicit null are kept.
func EncodePreserving[R any](s *Schema[R], d Decoded[R], mode EncodeMode) Document {
	skip := func(f Field[R]) bool {
		if !f.optional {
			return false
		}
		p := d.Presence[Root().Field(f.name).Pointer()]
		return p&PresenceDefaultApplied != 0 && p&PresenceSeen == 0
	}
	return s.encode(&d.Value, mode, skip)
}
