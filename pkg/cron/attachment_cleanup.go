package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"estatehub_backend/internal/attachment"
	"estatehub_backend/pkg/database"
)

// InitAttachmentCleanupCron purges SEO/custom-field rows whose entity no
// longer exists. Delete paths already cascade attachments in-transaction;
// this is the nightly backstop for rows orphaned by older data or crashes.
func InitAttachmentCleanupCron() {
	c := cron.New()

	_, err := c.AddFunc("30 3 * * *", func() {
		purgeOrphanedAttachments()
	})

	if err != nil {
		log.Printf("Could not initialize attachment cleanup cron: %v", err)
		return
	}

	c.Start()
}

func purgeOrphanedAttachments() {
	log.Println("Purging orphaned attachments...")

	resolver := attachment.NewDefaultResolver(database.GetDB())
	purged, err := resolver.PurgeOrphans()
	if err != nil {
		log.Printf("Error purging orphaned attachments: %v", err)
		return
	}

	log.Printf("Purged attachments for %d orphaned entities", purged)
}
