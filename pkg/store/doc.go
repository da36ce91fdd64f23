// Package store persists named, versioned Block Kit message templates in Redis.
//
// # Overview
//
// A template is an immutable snapshot of a validated blockkit.Message saved under a
// name. Saving the same name again never overwrites: it allocates the next version
// and records it in a per-name sorted set, so every historical payload stays
// addressable by ID or by (name, version).
//
// # Multi-Tenant Support
//
// All Redis keys and Pub/Sub channels are namespaced, so several teams or
// environments can share one Redis server without seeing each other's templates.
//
// # Redis Schema
//
//	blockkit:{namespace}:template:{id}        hash   one template version
//	blockkit:{namespace}:versions:{name}      zset   template IDs scored by version
//	blockkit:{namespace}:template_names       set    every saved name
//	blockkit:{namespace}:template_events      pubsub full template JSON per save
//
// # Usage Example
//
//	client, err := store.NewClient(&redis.Options{Addr: "localhost:6379"}, "default")
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	tmpl, err := client.SaveTemplate(ctx, "deploy-approval", msg)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("saved %s v%d\n", tmpl.Name, tmpl.Version)
//
//	latest, err := client.GetLatest(ctx, "deploy-approval")
//	if store.IsNotFound(err) {
//		// no template with that name yet
//	}
package store
