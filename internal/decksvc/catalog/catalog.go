package catalog

import (
	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
)

// Cards is the full reference catalog every hand is dealt from.
// Read-only; play metadata is never written back here.
var Cards = []models.Card{
	{ID: "c01", Title: "Breakfast in Bed", Description: "Surprise your partner with their favorite breakfast before they get up.", Rarity: models.RarityCommon},
	{ID: "c02", Title: "Three Compliments", Description: "Give your partner three honest compliments they have never heard from you.", Rarity: models.RarityCommon},
	{ID: "c03", Title: "Phone-Free Dinner", Description: "Share a full dinner together with both phones out of reach.", Rarity: models.RarityCommon},
	{ID: "c04", Title: "Song Dedication", Description: "Send your partner a song that reminds you of them and tell them why.", Rarity: models.RarityCommon},
	{ID: "c05", Title: "Old Photo Hunt", Description: "Find the oldest photo of the two of you and recreate it today.", Rarity: models.RarityCommon},
	{ID: "c06", Title: "Twenty-Minute Massage", Description: "Your partner picks the spot, you bring the effort. No shortcuts.", Rarity: models.RarityRare},
	{ID: "c07", Title: "Secret Errand", Description: "Quietly take over one chore your partner dreads this week.", Rarity: models.RarityRare},
	{ID: "c08", Title: "Handwritten Letter", Description: "Write a real letter on paper about a moment you fell for them again.", Rarity: models.RarityRare},
	{ID: "c09", Title: "Swap Playlists", Description: "Trade playlists for a day and report back on your three favorites.", Rarity: models.RarityRare},
	{ID: "c10", Title: "Sunset Walk", Description: "Walk somewhere with a view and stay until the light is gone.", Rarity: models.RarityRare},
	{ID: "c11", Title: "Mystery Date", Description: "Plan a full date and reveal nothing until you are both out the door.", Rarity: models.RarityEpic},
	{ID: "c12", Title: "Cook Their Childhood Dish", Description: "Find out a dish they loved as a kid and cook it from scratch.", Rarity: models.RarityEpic},
	{ID: "c13", Title: "First-Date Reenactment", Description: "Return to where you first met or first went out and order the same things.", Rarity: models.RarityEpic},
	{ID: "c14", Title: "Skill Swap Night", Description: "Each teaches the other something they are good at. Patience required.", Rarity: models.RarityEpic},
	{ID: "c15", Title: "Weekend Getaway Draft", Description: "Plan a full weekend escape together, budget and all, and book the first piece.", Rarity: models.RarityLegendary},
	{ID: "c16", Title: "Bucket List Entry", Description: "Add one shared dream to the couple bucket list and take the first concrete step today.", Rarity: models.RarityLegendary},
	{ID: "c17", Title: "Renew a Promise", Description: "Write and exchange one promise for the next year of being together.", Rarity: models.RarityLegendary},
	{ID: "c18", Title: "Yes Day", Description: "For the rest of the day, the answer to every reasonable request is yes.", Rarity: models.RaritySpecial},
	{ID: "c19", Title: "Role Reversal", Description: "Spend the evening doing exactly what the other usually does, routines included.", Rarity: models.RaritySpecial},
	{ID: "c20", Title: "Ask Me Anything", Description: "Ten questions each, total honesty, no follow-up held against anyone.", Rarity: models.RaritySpecial},
}
