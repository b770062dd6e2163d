package metadata

// ExtractConfig collects the <config key="" value=""/> children of node.
// Later entries override earlier ones with the same key. A missing key or
// value attribute reads as the empty string rather than failing the load.
func ExtractConfig(node *Node) map[string]string {
	config := make(map[string]string)
	for _, c := range node.ChildrenNamed("config") {
		config[c.AttrOr("key", "")] = c.AttrOr("value", "")
	}
	return config
}
