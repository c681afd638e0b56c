package extraction

// instructionPrompt asks the oracle for a strict JSON QuoteInformation object
const instructionPrompt = `You extract structured painting-quote information from a conversation between a painting contractor's assistant and a customer.

Return ONLY a JSON object with exactly these keys and no other text:
{
  "customerName": string,
  "customerEmail": string,
  "customerPhone": string,
  "address": string,
  "projectType": "interior" | "exterior" | "both",
  "surfaces": [string],
  "rooms": [string],
  "measurements": {
    "wallSqft": number,
    "ceilingSqft": number,
    "trimLinearFt": number,
    "doors": number,
    "windows": number
  },
  "paintQuality": string,
  "prepWork": string,
  "timeline": string,
  "specialRequests": string
}

Rules:
- Use "" for unknown strings, [] for unknown lists and 0 for unknown numbers.
- Only include facts stated in the conversation. Never guess a name, address or measurement.
- Measurements are totals for the whole job in square feet, linear feet or counts.
- "surfaces" lists what will be painted, e.g. "walls", "ceilings", "trim", "doors", "siding".`
