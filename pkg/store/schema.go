package store

import "fmt"

// TemplateKey returns the Redis key for a template version's hash.
// Pattern: blockkit:{namespace}:template:{id}
func TemplateKey(namespace, templateID string) string {
	return fmt.Sprintf("blockkit:%s:template:%s", namespace, templateID)
}

// TemplateVersionsKey returns the Redis key for a template name's version index.
// Pattern: blockkit:{namespace}:versions:{name}
func TemplateVersionsKey(namespace, name string) string {
	return fmt.Sprintf("blockkit:%s:versions:%s", namespace, name)
}

// TemplateNamesKey returns the Redis key for the set of saved template names.
// Pattern: blockkit:{namespace}:template_names
func TemplateNamesKey(namespace string) string {
	return fmt.Sprintf("blockkit:%s:template_names", namespace)
}

// TemplateEventsChannel returns the Pub/Sub channel for template save events.
// Pattern: blockkit:{namespace}:template_events
func TemplateEventsChannel(namespace string) string {
	return fmt.Sprintf("blockkit:%s:template_events", namespace)
}
