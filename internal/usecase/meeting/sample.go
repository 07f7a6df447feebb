package meeting

// SampleTranscriptName is the source name reported for demo submissions
const SampleTranscriptName = "sample-transcript.txt"

// SampleTranscript is the built-in demo meeting used by demo submissions
const SampleTranscript = `Meeting Title: Q2 Product Roadmap Planning
Date: 04/15/2025
Participants: Sarah Johnson (Product Manager), Michael Chen (Engineering Lead), Emma Rodriguez (UX Designer), David Kim (Marketing Director), Alex Thompson (Customer Success)

Sarah: Good morning everyone! Thanks for joining our Q2 roadmap planning session. Today we need to finalize our priorities for the next quarter and assign owners to each initiative.

Michael: Sounds good. Based on our technical debt discussion last week, I think we should prioritize the database migration.

Emma: I agree with Michael, but we also need to consider the user feedback we've been getting about the dashboard redesign.

Sarah: Both are important. Let's list out all our potential initiatives first and then prioritize.

David: From marketing's perspective, we need the new landing page templates by mid-May for the summer campaign.

Alex: And customers have been asking for the improved export functionality for months now.

Sarah: Great input. Let's capture all of these. So we have:
1. Database migration
2. Dashboard redesign
3. Landing page templates
4. Export functionality improvements

Any others we should add to the list?

Michael: We should also include the API authentication update. It's a security priority.

Sarah: Good point. Let's add that.

[Discussion continues for 20 minutes about technical details and requirements]

Sarah: OK, after discussing all the initiatives, I think we need to make some decisions. Based on our capacity and business priorities, I propose we focus on the database migration, dashboard redesign, and export functionality for Q2.

David: I understand the landing page templates didn't make the cut, but marketing really needs this for the summer campaign. Is there any way we can fit it in?

Michael: What if we reduce the scope of the dashboard redesign to just the analytics section? That might free up some capacity.

Emma: That could work. The analytics section is what users interact with most anyway.

Sarah: That's a good compromise. Let's do that. So our final Q2 roadmap will be:
1. Database migration (Priority 1)
2. Analytics dashboard redesign (Priority 2)
3. Export functionality improvements (Priority 3)
4. Landing page templates (Priority 4)

Does everyone agree with this prioritization?

[All participants agree]

Sarah: Great! Now let's assign owners and deadlines. Michael, can you lead the database migration?

Michael: Yes, I can. We should be able to complete it by the end of May.

Sarah: Emma, you'll lead the analytics dashboard redesign?

Emma: Yes, I'll work with the design team. We can have it ready by mid-June.

Sarah: Alex, can you own the export functionality improvements?

Alex: Definitely. We can deliver that by the end of June.

Sarah: And David, you'll handle the landing page templates with your team?

David: Yes, we'll need them by May 15th for the campaign.

Sarah: That might be tight. Let's aim for May 20th to be safe.

David: That works.

Sarah: Excellent! To summarize our action items:
- Michael will lead the database migration, to be completed by May 31st
- Emma will lead the analytics dashboard redesign, to be completed by June 15th
- Alex will lead the export functionality improvements, to be completed by June 30th
- David will lead the landing page templates, to be completed by May 20th

Additionally, I'll schedule weekly check-ins to track our progress. Our first check-in will be next Monday at 10 AM.

Anything else we should discuss before we wrap up?

Michael: Just a reminder that I'll need input from Alex's team on the export functionality requirements by the end of this week.

Alex: Noted. I'll send that over by Friday.

Sarah: Perfect. Thanks everyone for your time and input. Let's make Q2 our best quarter yet!

[Meeting ends]
`
